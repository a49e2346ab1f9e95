package deployment

import (
	"io"

	"skylift/internal/model"
)

type UpInput struct {
	ProjectID string
	// Archive is the gzipped tar of the project working directory.
	Archive io.Reader
}

type UpOutput struct {
	Deployment model.Deployment
}

type LogsInput struct {
	ProjectID string
	// DeploymentID is optional; empty means the latest deployment.
	DeploymentID string
	// Tail bounds how many persisted lines come back. Zero means the
	// default window.
	Tail int
}

type LogsOutput struct {
	Deployment model.Deployment
	Lines      []model.LogLine
}
