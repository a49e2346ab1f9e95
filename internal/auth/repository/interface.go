package repository

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetUser returns zero-value User (ID == "") when not found.
	GetUser(ctx context.Context, opt GetUserOptions) (model.User, error)

	CreateToken(ctx context.Context, opt CreateTokenOptions) (model.APIToken, error)
	// GetToken returns zero-value APIToken (ID == "") when not found.
	GetToken(ctx context.Context, id string) (model.APIToken, error)
	ListTokens(ctx context.Context, userID string) ([]model.APIToken, error)
	// TouchToken records last use. Best effort.
	TouchToken(ctx context.Context, id string) error
}
