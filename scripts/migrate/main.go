// Command migrate creates the Skylift metadata schema. It is idempotent
// and safe to re-run on an existing database.
//
// Usage: go run scripts/migrate/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"skylift/config"
	"skylift/config/postgre"
	"skylift/pkg/log"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS api_tokens (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		name       TEXT NOT NULL DEFAULT '',
		token_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_used  TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		slug                 TEXT NOT NULL,
		owner_id             TEXT NOT NULL REFERENCES users (id),
		environment          TEXT NOT NULL DEFAULT 'production',
		active_deployment_id TEXT,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (owner_id, slug)
	)`,

	`CREATE TABLE IF NOT EXISTS variables (
		id         TEXT NOT NULL,
		project_id TEXT NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		injected   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (project_id, key)
	)`,

	`CREATE TABLE IF NOT EXISTS plugins (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		kind           TEXT NOT NULL,
		status         TEXT NOT NULL,
		connection_url TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (project_id, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS deployments (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		status      TEXT NOT NULL,
		source_path TEXT NOT NULL,
		image_ref   TEXT,
		failed_step TEXT,
		restarts    INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		started_at  TIMESTAMPTZ,
		finished_at TIMESTAMPTZ
	)`,

	// Workers poll this to claim queued work.
	`CREATE INDEX IF NOT EXISTS deployments_status_created_idx
		ON deployments (status, created_at)`,
	`CREATE INDEX IF NOT EXISTS deployments_project_idx
		ON deployments (project_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS deployment_logs (
		deployment_id TEXT NOT NULL REFERENCES deployments (id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		stream        TEXT NOT NULL,
		message       TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (deployment_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS domains (
		id                 TEXT PRIMARY KEY,
		project_id         TEXT NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
		hostname           TEXT NOT NULL UNIQUE,
		kind               TEXT NOT NULL,
		status             TEXT NOT NULL,
		verification_token TEXT NOT NULL DEFAULT '',
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func main() {
	if len(os.Args) > 1 {
		os.Setenv("CONFIG_PATH", os.Args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer postgre.Disconnect(ctx, db)

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			logger.Fatalf(ctx, "Migration statement %d failed: %v", i+1, err)
		}
	}

	logger.Infof(ctx, "Schema ready (%d statements applied)", len(statements))
}
