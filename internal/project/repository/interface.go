package repository

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Project, error)
	// GetOne returns a zero-value Project (ID == "") when nothing matches.
	GetOne(ctx context.Context, opt GetOneOptions) (model.Project, error)
	List(ctx context.Context, opt ListOptions) ([]model.Project, error)
	UpdateActiveDeployment(ctx context.Context, projectID, deploymentID string) error
}
