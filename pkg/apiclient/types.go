package apiclient

import "time"

// User is an account on the control plane.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult carries the session JWT from a password login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// APIToken is a personal access token (secret never returned after mint).
type APIToken struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
}

// CreateTokenResult carries the one-time plaintext of a freshly minted token.
type CreateTokenResult struct {
	Token     APIToken `json:"token"`
	Plaintext string   `json:"plaintext"`
}

// Project is a deployable unit.
type Project struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Environment        string    `json:"environment"`
	ActiveDeploymentID string    `json:"active_deployment_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Deployment is one build+release of a project.
type Deployment struct {
	ID         string     `json:"id"`
	ProjectID  string     `json:"project_id"`
	Status     string     `json:"status"`
	ImageRef   string     `json:"image_ref,omitempty"`
	FailedStep string     `json:"failed_step,omitempty"`
	Restarts   int        `json:"restarts"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// DeploymentStatusTerminal reports whether a deployment status admits
// no further transitions.
func DeploymentStatusTerminal(status string) bool {
	switch status {
	case "failed", "crashed", "removed":
		return true
	}
	return false
}

// LogLine is one line of build/runtime output.
type LogLine struct {
	DeploymentID string    `json:"deployment_id"`
	Seq          int       `json:"seq"`
	Stream       string    `json:"stream"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

// LogsResult is a persisted log tail plus the deployment it belongs to.
type LogsResult struct {
	Deployment Deployment `json:"deployment"`
	Lines      []LogLine  `json:"lines"`
}

// Plugin is an attached managed service.
type Plugin struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Variable  string    `json:"variable"`
	CreatedAt time.Time `json:"created_at"`
}

// Variable is a project environment variable. Values of secret-looking
// keys come back masked from List; Export returns them unmasked.
type Variable struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Injected bool   `json:"injected"`
}

// Domain is a hostname routed to the project.
type Domain struct {
	ID        string    `json:"id"`
	Hostname  string    `json:"hostname"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AddDomainResult carries the TXT challenge for a pending custom domain.
type AddDomainResult struct {
	Domain    Domain `json:"domain"`
	TXTRecord string `json:"txt_record"`
	TXTValue  string `json:"txt_value"`
}

// ProjectStatus is the aggregate the `status` command renders.
type ProjectStatus struct {
	Project          Project            `json:"project"`
	ActiveDeployment *DeploymentSummary `json:"active_deployment,omitempty"`
	LatestDeployment *DeploymentSummary `json:"latest_deployment,omitempty"`
	Plugins          []Plugin           `json:"plugins"`
	Domains          []Domain           `json:"domains"`
}

// DeploymentSummary is the trimmed deployment view inside ProjectStatus.
type DeploymentSummary struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	FailedStep string     `json:"failed_step,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
