package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert domain")
	ErrFailedToGet    = errors.New("failed to get domain")
	ErrFailedToList   = errors.New("failed to list domains")
	ErrFailedToUpdate = errors.New("failed to update domain")
)
