package postgre

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"skylift/internal/auth/repository"
	"skylift/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *pgxpool.Pool
}

var _ repository.Repository = &implRepository{}

// New creates the postgres-backed auth repository.
func New(db *pgxpool.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/postgre: db is required")
	}
	return &implRepository{
		l:  l,
		db: db,
	}
}
