package model

import "time"

// DeploymentStatus is the lifecycle state of a deployment.
//
// queued → building → deploying → active | failed
// active → crashed (restart budget exhausted) | removed (superseded)
type DeploymentStatus string

const (
	DeploymentQueued    DeploymentStatus = "queued"
	DeploymentBuilding  DeploymentStatus = "building"
	DeploymentDeploying DeploymentStatus = "deploying"
	DeploymentActive    DeploymentStatus = "active"
	DeploymentFailed    DeploymentStatus = "failed"
	DeploymentCrashed   DeploymentStatus = "crashed"
	DeploymentRemoved   DeploymentStatus = "removed"
)

// Terminal reports whether no further transitions are possible.
func (s DeploymentStatus) Terminal() bool {
	return s == DeploymentFailed || s == DeploymentCrashed || s == DeploymentRemoved
}

// CanTransition validates a status transition.
func (s DeploymentStatus) CanTransition(next DeploymentStatus) bool {
	switch s {
	case DeploymentQueued:
		return next == DeploymentBuilding || next == DeploymentFailed
	case DeploymentBuilding:
		return next == DeploymentDeploying || next == DeploymentFailed
	case DeploymentDeploying:
		return next == DeploymentActive || next == DeploymentFailed
	case DeploymentActive:
		return next == DeploymentCrashed || next == DeploymentRemoved
	}
	return false
}

// Deployment is one build+release of a project's source archive.
type Deployment struct {
	ID        string
	ProjectID string
	Status    DeploymentStatus

	// SourcePath is the stored source archive location on the build host.
	SourcePath string
	// ImageRef is set once the build step produces an image.
	ImageRef string
	// FailedStep records the pipeline step that failed, if any.
	FailedStep string
	// Restarts counts crash-restarts consumed under the restart policy.
	Restarts int

	CreatedAt  time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
}

// LogLine is one line of build/runtime output attached to a deployment.
type LogLine struct {
	DeploymentID string    `json:"deployment_id"`
	Seq          int       `json:"seq"`
	Stream       string    `json:"stream"` // build | deploy | app
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}
