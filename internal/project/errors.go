package project

import "errors"

var (
	ErrNotFound      = errors.New("project not found")
	ErrDuplicateName = errors.New("project name already exists")
	ErrInvalidName   = errors.New("project name is invalid")
	ErrForbidden     = errors.New("project does not belong to caller")
)
