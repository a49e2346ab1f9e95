package plugin

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Add provisions a managed instance of the given kind and publishes
	// its connection string as the kind's reserved variable.
	Add(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)
	// ConnectionURL returns the unmasked DSN for `connect`.
	ConnectionURL(ctx context.Context, sc model.Scope, projectID string, kind model.PluginKind) (string, error)
	// ListByProject returns the project's plugins (also feeds project status).
	ListByProject(ctx context.Context, projectID string) ([]model.Plugin, error)
}

// Provisioner creates the actual managed instance for one plugin kind and
// returns its connection URL.
type Provisioner interface {
	Kind() model.PluginKind
	Provision(ctx context.Context, project model.Project) (string, error)
}

// ProjectReader is the ownership check dependency, satisfied by the
// project usecase.
type ProjectReader interface {
	GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error)
}

// VariableInjector publishes the reserved connection variable, satisfied
// by the variable usecase.
type VariableInjector interface {
	SetInjected(ctx context.Context, projectID, key, value string) error
}
