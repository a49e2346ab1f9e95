package model

import "time"

// Environment is the runtime environment a project is deployed in.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Project is the top-level deployable unit. Each project carries exactly one
// service (the application) plus its attached plugins, variables and domains.
type Project struct {
	ID          string
	Name        string
	Slug        string
	OwnerID     string
	Environment Environment

	// ActiveDeploymentID is the deployment currently serving traffic.
	// Empty until the first successful deploy.
	ActiveDeploymentID string

	CreatedAt time.Time
	UpdatedAt time.Time
}
