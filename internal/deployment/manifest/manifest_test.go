package manifest

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Run("Full Manifest", func(t *testing.T) {
		content := []byte(`
build:
  command: docker build -t app .
deploy:
  start_command: uvicorn main:app --host 0.0.0.0
  pre_deploy: alembic upgrade head
healthcheck:
  path: /healthz
  timeout: 30s
restart:
  max_retries: 5
`)
		m, err := Parse(content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Build.Command != "docker build -t app ." {
			t.Errorf("build command: %q", m.Build.Command)
		}
		if m.Deploy.PreDeploy != "alembic upgrade head" {
			t.Errorf("pre_deploy: %q", m.Deploy.PreDeploy)
		}
		if m.Healthcheck.Path != "/healthz" || m.Healthcheck.Timeout != 30*time.Second {
			t.Errorf("healthcheck: %+v", m.Healthcheck)
		}
		if m.Restart.MaxRetries != 5 {
			t.Errorf("max_retries: %d", m.Restart.MaxRetries)
		}
	})

	t.Run("Empty Content Keeps Defaults", func(t *testing.T) {
		m, err := Parse(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Healthcheck.Path != "/health" {
			t.Errorf("default healthcheck path: %q", m.Healthcheck.Path)
		}
		if m.Restart.MaxRetries != -1 {
			t.Errorf("default max_retries: %d", m.Restart.MaxRetries)
		}
		if m.Deploy.StartCommand != "" {
			t.Errorf("unexpected start command %q", m.Deploy.StartCommand)
		}
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		if _, err := Parse([]byte("build: [unbalanced")); err == nil {
			t.Error("expected parse error")
		}
	})
}
