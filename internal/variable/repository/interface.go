package repository

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Upsert(ctx context.Context, opt UpsertOptions) (model.Variable, error)
	// GetOne returns a zero-value Variable (ID == "") when not found.
	GetOne(ctx context.Context, opt GetOneOptions) (model.Variable, error)
	List(ctx context.Context, projectID string) ([]model.Variable, error)
	Delete(ctx context.Context, projectID, key string) error
}
