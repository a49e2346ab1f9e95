package domains

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate mints the platform subdomain for a project. Idempotent:
	// calling it again returns the existing generated domain.
	Generate(ctx context.Context, sc model.Scope, projectID string) (GenerateOutput, error)
	// AddCustom attaches a customer-owned hostname. The domain stays
	// pending until Verify sees its TXT record.
	AddCustom(ctx context.Context, sc model.Scope, input AddCustomInput) (AddCustomOutput, error)
	// Verify checks the TXT record of a pending custom domain and
	// activates it on match.
	Verify(ctx context.Context, sc model.Scope, projectID, hostname string) (model.Domain, error)
	// List returns all domains of a project, generated first.
	List(ctx context.Context, sc model.Scope, projectID string) ([]model.Domain, error)

	// ListByProject is the unauthenticated read used by project status
	// aggregation and the edge router.
	ListByProject(ctx context.Context, projectID string) ([]model.Domain, error)
}

// ProjectReader is the ownership check dependency, satisfied by the
// project usecase.
type ProjectReader interface {
	GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error)
}

// TXTResolver looks up DNS TXT records for custom domain verification.
type TXTResolver interface {
	LookupTXT(ctx context.Context, name string) ([]string, error)
}
