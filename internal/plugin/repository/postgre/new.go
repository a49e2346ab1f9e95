package postgre

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"skylift/internal/plugin/repository"
	"skylift/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the plugin domain.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("plugin/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
