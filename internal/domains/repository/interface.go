package repository

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Domain, error)
	// GetOne returns zero-value Domain (ID == "") when not found.
	GetOne(ctx context.Context, opt GetOneOptions) (model.Domain, error)
	ListByProject(ctx context.Context, projectID string) ([]model.Domain, error)
	UpdateStatus(ctx context.Context, id string, status model.DomainStatus) error
}
