package deployment

import "errors"

var (
	ErrNotFound      = errors.New("deployment not found")
	ErrNoDeployments = errors.New("project has no deployments")
	ErrEmptyArchive  = errors.New("source archive is empty")
	ErrStoreArchive  = errors.New("failed to store source archive")
)
