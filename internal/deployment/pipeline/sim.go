package pipeline

import (
	"context"
	"fmt"
)

// registry the simulated builder publishes image refs under.
const registryHost = "registry.skylift.internal"

// simBuilder stands in for a real sandboxed image build. It walks the
// same decision tree a real builder would and emits the corresponding
// build output, producing a deterministic image ref.
type simBuilder struct{}

// NewSimBuilder returns the built-in builder.
func NewSimBuilder() Builder {
	return simBuilder{}
}

func (simBuilder) Build(ctx context.Context, req BuildRequest, logf func(string)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch {
	case req.Source.HasDockerfile:
		logf("detected Dockerfile, building image")
	case req.Source.Manifest.Build.Command != "":
		logf(fmt.Sprintf("running build command: %s", req.Source.Manifest.Build.Command))
	default:
		logf("no Dockerfile or build command, using default buildpack")
	}

	logf(fmt.Sprintf("packaged %d files", req.Source.Files))

	ref := fmt.Sprintf("%s/%s:%s", registryHost, req.Deployment.ProjectID, shortID(req.Deployment.ID))
	logf(fmt.Sprintf("image ready: %s", ref))
	return ref, nil
}

// simRuntime stands in for the container runtime: it "starts" the
// instance and reports the health check as passed.
type simRuntime struct{}

// NewSimRuntime returns the built-in runtime.
func NewSimRuntime() Runtime {
	return simRuntime{}
}

func (simRuntime) Start(ctx context.Context, req StartRequest, logf func(string)) (<-chan error, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logf(fmt.Sprintf("starting %s", req.ImageRef))
	if cmd := req.Manifest.Deploy.StartCommand; cmd != "" {
		logf(fmt.Sprintf("start command: %s", cmd))
	}
	logf(fmt.Sprintf("health check %s passed", req.Manifest.Healthcheck.Path))

	// The simulated instance never dies on its own.
	return make(chan error), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
