package auth

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates a platform account.
	Register(ctx context.Context, input RegisterInput) (model.User, error)
	// Login exchanges email+password for a session JWT.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// WhoAmI resolves the caller's account from their scope.
	WhoAmI(ctx context.Context, sc model.Scope) (model.User, error)

	// CreateToken mints a personal access token for CLI use. The
	// plaintext is returned once and never stored.
	CreateToken(ctx context.Context, sc model.Scope, name string) (CreateTokenOutput, error)
	// ListTokens returns the caller's tokens (hashes omitted).
	ListTokens(ctx context.Context, sc model.Scope) ([]model.APIToken, error)

	// VerifyAPIToken resolves an "sk_"-prefixed token to a scope. Used
	// by the auth middleware for non-JWT credentials.
	VerifyAPIToken(ctx context.Context, token string) (model.Scope, error)
}
