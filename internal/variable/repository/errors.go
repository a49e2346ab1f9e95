package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert variable")
	ErrFailedToGet    = errors.New("failed to get variable")
	ErrFailedToList   = errors.New("failed to list variables")
	ErrFailedToDelete = errors.New("failed to delete variable")
	ErrNotFound       = errors.New("variable not found")
)
