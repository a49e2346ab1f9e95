package model

import "time"

// Reserved variable names are injected by the platform and cannot be set or
// unset by operators. PORT is assigned at deploy time; DATABASE_URL and
// REDIS_URL are published by plugin provisioning.
var ReservedVariables = map[string]bool{
	"DATABASE_URL": true,
	"REDIS_URL":    true,
	"PORT":         true,
}

// Variable is a project-scoped environment variable.
type Variable struct {
	ID        string
	ProjectID string
	Key       string
	Value     string

	// Injected marks platform-owned variables (plugin connection strings).
	Injected bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
