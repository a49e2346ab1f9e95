package repository

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Plugin, error)
	// GetOne returns a zero-value Plugin (ID == "") when not found.
	GetOne(ctx context.Context, opt GetOneOptions) (model.Plugin, error)
	ListByProject(ctx context.Context, projectID string) ([]model.Plugin, error)
	// ListByKind lists plugins of a kind platform-wide; the redis
	// provisioner derives the logical DB indexes in use from it.
	ListByKind(ctx context.Context, kind model.PluginKind) ([]model.Plugin, error)
	UpdateProvisioned(ctx context.Context, opt UpdateProvisionedOptions) error
}
