package domains

import "errors"

var (
	ErrNotFound        = errors.New("domain not found")
	ErrAlreadyExists   = errors.New("hostname already attached")
	ErrInvalidHostname = errors.New("invalid hostname")
	ErrReservedZone    = errors.New("hostname inside the platform zone")
	ErrNotVerified     = errors.New("TXT record not found or mismatched")
)
