package repository

import (
	"time"

	"skylift/internal/model"
)

type CreateOptions struct {
	// ID is assigned by the usecase so the archive can be stored under
	// it before the row exists.
	ID         string
	ProjectID  string
	SourcePath string
}

type GetOneOptions struct {
	ID        string
	ProjectID string
	Status    model.DeploymentStatus
}

type UpdateOptions struct {
	ID string

	Status     model.DeploymentStatus
	ImageRef   string
	FailedStep string
	StartedAt  *time.Time
	FinishedAt *time.Time
}
