// Package provisioner creates managed plugin instances on the shared
// clusters and hands back application-facing connection URLs.
package provisioner

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"skylift/config"
	"skylift/internal/model"
	"skylift/pkg/log"
	"skylift/pkg/namegen"
)

// Postgres provisions a database + owner role per project on the shared
// managed Postgres cluster.
type Postgres struct {
	admin *pgxpool.Pool
	cfg   config.ManagedConfig
	l     log.Logger
}

// NewPostgres creates the PostgreSQL provisioner. admin must be a superuser
// pool on the shared cluster.
func NewPostgres(admin *pgxpool.Pool, cfg config.ManagedConfig, l log.Logger) *Postgres {
	return &Postgres{admin: admin, cfg: cfg, l: l}
}

func (p *Postgres) Kind() model.PluginKind { return model.PluginPostgreSQL }

// Provision creates an isolated role and database for the project and
// returns the DSN the application will receive as DATABASE_URL.
func (p *Postgres) Provision(ctx context.Context, project model.Project) (string, error) {
	suffix := namegen.Suffix(6)
	dbName := sqlName(project.Slug, suffix)
	roleName := dbName + "_owner"
	password, err := randomPassword()
	if err != nil {
		return "", err
	}

	// Identifiers cannot be parameterized; sanitize them explicitly.
	createRole := fmt.Sprintf(
		"CREATE ROLE %s WITH LOGIN PASSWORD '%s'",
		pgx.Identifier{roleName}.Sanitize(), password,
	)
	if _, err := p.admin.Exec(ctx, createRole); err != nil {
		p.l.Errorf(ctx, "provisioner.Postgres create role: %v", err)
		return "", fmt.Errorf("create role: %w", err)
	}

	createDB := fmt.Sprintf(
		"CREATE DATABASE %s OWNER %s",
		pgx.Identifier{dbName}.Sanitize(), pgx.Identifier{roleName}.Sanitize(),
	)
	if _, err := p.admin.Exec(ctx, createDB); err != nil {
		p.l.Errorf(ctx, "provisioner.Postgres create database: %v", err)
		return "", fmt.Errorf("create database: %w", err)
	}

	dsn := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(roleName, password),
		Host:   fmt.Sprintf("%s:%d", p.cfg.PostgresHost, p.cfg.PostgresPort),
		Path:   "/" + dbName,
	}
	return dsn.String(), nil
}

// sqlName converts a project slug into a safe SQL identifier stem.
func sqlName(slug, suffix string) string {
	stem := strings.ReplaceAll(slug, "-", "_")
	if len(stem) > 32 {
		stem = stem[:32]
	}
	if stem == "" {
		stem = "app"
	}
	return stem + "_" + suffix
}

func randomPassword() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
