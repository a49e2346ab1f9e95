package variable

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Set upserts user variables on a project. Reserved names are rejected.
	Set(ctx context.Context, sc model.Scope, input SetInput) (SetOutput, error)
	// SetFromDotenv parses dotenv content and upserts every pair in it.
	SetFromDotenv(ctx context.Context, sc model.Scope, projectID string, content []byte) (SetOutput, error)
	// List returns the project's variables with secret values masked.
	List(ctx context.Context, sc model.Scope, projectID string) (ListOutput, error)
	// Export returns the unmasked variable map for local `run` injection.
	Export(ctx context.Context, sc model.Scope, projectID string) (map[string]string, error)
	// Unset removes a user variable. Reserved and injected names are refused.
	Unset(ctx context.Context, sc model.Scope, input UnsetInput) error

	// Injector is embedded so sibling domains (plugin provisioning, the
	// deploy pipeline) can publish and read variables without scope checks.
	Injector
}

// Injector is the platform-internal variable surface.
type Injector interface {
	// SetInjected publishes a platform-owned variable (e.g. DATABASE_URL).
	SetInjected(ctx context.Context, projectID, key, value string) error
	// Resolve returns the full environment a deployment starts with:
	// user variables, injected variables, and the assigned PORT.
	Resolve(ctx context.Context, projectID string, port int) (map[string]string, error)
}

// ProjectReader is the ownership check dependency, satisfied by the
// project usecase.
type ProjectReader interface {
	GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error)
}
