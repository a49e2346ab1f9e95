package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "skylift/internal/auth/repository"
	"skylift/internal/model"
)

// CreateUser inserts a new account. Email has a unique index.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, email, password_hash, created_at`

	var u model.User
	err := r.db.QueryRow(ctx, query, uuid.NewString(), opt.Email, opt.PasswordHash).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/postgre.CreateUser: %v", err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetUser retrieves an account by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetUser(ctx context.Context, opt repo.GetUserOptions) (model.User, error) {
	var conds []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conds) == 0 {
		return model.User{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(`
		SELECT id, email, password_hash, created_at
		FROM users WHERE %s LIMIT 1`, strings.Join(conds, " AND "))

	var u model.User
	err := r.db.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/postgre.GetUser: %v", err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
