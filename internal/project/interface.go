package project

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create provisions a new empty project for the caller.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// Detail returns a single project owned by the caller.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	// List returns all projects owned by the caller.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	// Status aggregates the project with its active deployment, plugins
	// and domains into one operator-facing view.
	Status(ctx context.Context, sc model.Scope, id string) (StatusOutput, error)

	// GetOwned loads a project and enforces ownership. Other domains use
	// it as their access check before touching project-scoped resources.
	GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error)
}

// StatusDeps are the read-side collaborators Status aggregates from.
// Declared here so the project usecase does not import sibling domains.
type StatusDeps struct {
	Plugins     PluginLister
	Deployments DeploymentReader
	Domains     DomainLister
}

type PluginLister interface {
	ListByProject(ctx context.Context, projectID string) ([]model.Plugin, error)
}

type DeploymentReader interface {
	Latest(ctx context.Context, projectID string) (model.Deployment, error)
	Get(ctx context.Context, id string) (model.Deployment, error)
}

type DomainLister interface {
	ListByProject(ctx context.Context, projectID string) ([]model.Domain, error)
}
