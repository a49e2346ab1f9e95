package model

import "time"

// PluginKind identifies a managed add-on type.
type PluginKind string

const (
	PluginPostgreSQL PluginKind = "postgresql"
	PluginRedis      PluginKind = "redis"
)

// PluginStatus is the provisioning state of a managed instance.
type PluginStatus string

const (
	PluginStatusProvisioning PluginStatus = "provisioning"
	PluginStatusRunning      PluginStatus = "running"
	PluginStatusFailed       PluginStatus = "failed"
)

// InjectedVariable returns the reserved variable name a plugin kind
// publishes its connection string under.
func (k PluginKind) InjectedVariable() string {
	switch k {
	case PluginPostgreSQL:
		return "DATABASE_URL"
	case PluginRedis:
		return "REDIS_URL"
	}
	return ""
}

// Valid reports whether k is a supported plugin kind.
func (k PluginKind) Valid() bool {
	return k == PluginPostgreSQL || k == PluginRedis
}

// Plugin is a managed database/cache instance attached to a project.
// The instance is reachable by the application only through the connection
// URL injected as a reserved variable.
type Plugin struct {
	ID        string
	ProjectID string
	Kind      PluginKind
	Status    PluginStatus

	// ConnectionURL is the full DSN (postgresql://... or redis://...).
	// Stored server-side; surfaced masked except to `connect`.
	ConnectionURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
