package deployment

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Up stores the uploaded source archive and enqueues a deployment.
	Up(ctx context.Context, sc model.Scope, input UpInput) (UpOutput, error)
	// Detail returns one deployment of a project owned by the caller.
	Detail(ctx context.Context, sc model.Scope, projectID, deploymentID string) (model.Deployment, error)
	// List returns a project's deployments, newest first.
	List(ctx context.Context, sc model.Scope, projectID string) ([]model.Deployment, error)
	// Logs returns the last input.Tail persisted log lines. DeploymentID
	// defaults to the project's most recent deployment.
	Logs(ctx context.Context, sc model.Scope, input LogsInput) (LogsOutput, error)
	// Follow streams a deployment's log lines from the persisted log,
	// closing the channel once the deployment finishes. The returned
	// cancel func must be called when the follower goes away.
	Follow(ctx context.Context, sc model.Scope, input LogsInput) (<-chan model.LogLine, func(), error)

	// Latest and Get are the unauthenticated reads feeding project
	// status aggregation.
	Latest(ctx context.Context, projectID string) (model.Deployment, error)
	Get(ctx context.Context, id string) (model.Deployment, error)
}

// ProjectReader is the ownership check dependency, satisfied by the
// project usecase.
type ProjectReader interface {
	GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error)
}
