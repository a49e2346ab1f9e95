package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert deployment")
	ErrFailedToGet    = errors.New("failed to get deployment")
	ErrFailedToList   = errors.New("failed to list deployments")
	ErrFailedToUpdate = errors.New("failed to update deployment")
	ErrFailedToClaim  = errors.New("failed to claim queued deployment")
	ErrFailedToLog    = errors.New("failed to append log lines")
)
