// Package manifest reads the optional skylift.yaml a project may carry
// in its source root to tune the deploy pipeline.
package manifest

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Filename is looked up in the source archive root.
const Filename = "skylift.yaml"

// Manifest is the per-project pipeline configuration.
type Manifest struct {
	Build       BuildConfig
	Deploy      DeployConfig
	Healthcheck HealthcheckConfig
	Restart     RestartConfig
}

type BuildConfig struct {
	// Command overrides builder detection when no Dockerfile is present.
	Command string
}

type DeployConfig struct {
	// StartCommand launches the application.
	StartCommand string
	// PreDeploy runs once per deployment before the app starts
	// (typically migrations).
	PreDeploy string
}

type HealthcheckConfig struct {
	Path    string
	Timeout time.Duration
}

type RestartConfig struct {
	// MaxRetries bounds crash-restarts before the deployment is marked
	// crashed. Negative means use the platform default.
	MaxRetries int
}

// Default returns the manifest used when the archive carries none.
func Default() Manifest {
	return Manifest{
		Healthcheck: HealthcheckConfig{Path: "/health", Timeout: 90 * time.Second},
		Restart:     RestartConfig{MaxRetries: -1},
	}
}

// Parse decodes skylift.yaml content. Missing keys keep their defaults.
func Parse(content []byte) (Manifest, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	m := Default()
	v.SetDefault("healthcheck.path", m.Healthcheck.Path)
	v.SetDefault("healthcheck.timeout", m.Healthcheck.Timeout)
	v.SetDefault("restart.max_retries", m.Restart.MaxRetries)

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", Filename, err)
	}

	m.Build.Command = v.GetString("build.command")
	m.Deploy.StartCommand = v.GetString("deploy.start_command")
	m.Deploy.PreDeploy = v.GetString("deploy.pre_deploy")
	m.Healthcheck.Path = v.GetString("healthcheck.path")
	m.Healthcheck.Timeout = v.GetDuration("healthcheck.timeout")
	m.Restart.MaxRetries = v.GetInt("restart.max_retries")

	return m, nil
}
