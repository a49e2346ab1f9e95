package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert plugin")
	ErrFailedToGet    = errors.New("failed to get plugin")
	ErrFailedToList   = errors.New("failed to list plugins")
	ErrFailedToUpdate = errors.New("failed to update plugin")
)
