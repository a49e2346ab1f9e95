package pipeline

import (
	"context"

	"skylift/internal/deployment/manifest"
	"skylift/internal/model"
)

// SourceInfo is what archive inspection learns about an upload.
type SourceInfo struct {
	Files         int
	HasDockerfile bool
	Manifest      manifest.Manifest
	// HasManifest reports whether skylift.yaml was present.
	HasManifest bool
}

// BuildRequest asks a Builder for a runnable image.
type BuildRequest struct {
	Deployment model.Deployment
	Source     SourceInfo
}

// StartRequest asks a Runtime to launch a built deployment.
type StartRequest struct {
	Deployment model.Deployment
	ImageRef   string
	Env        map[string]string
	Manifest   manifest.Manifest
}

// Builder turns a source archive into an image reference. logf receives
// human-readable build output lines.
type Builder interface {
	Build(ctx context.Context, req BuildRequest, logf func(string)) (string, error)
}

// Runtime starts a built deployment and health-checks it before
// returning. The returned channel delivers one error each time the
// running instance dies; a closed channel means the instance stopped
// for good, a nil one that the runtime does not report crashes.
type Runtime interface {
	Start(ctx context.Context, req StartRequest, logf func(string)) (<-chan error, error)
}

// ProjectStore is the slice of the project domain the pipeline needs to
// promote deployments.
type ProjectStore interface {
	Get(ctx context.Context, id string) (model.Project, error)
	SetActiveDeployment(ctx context.Context, projectID, deploymentID string) error
}

// EnvResolver supplies the environment a deployment starts with,
// satisfied by the variable usecase.
type EnvResolver interface {
	Resolve(ctx context.Context, projectID string, port int) (map[string]string, error)
}
