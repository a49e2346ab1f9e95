package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "skylift/internal/auth/repository"
	"skylift/internal/model"
)

// CreateToken inserts a new personal access token row.
func (r *implRepository) CreateToken(ctx context.Context, opt repo.CreateTokenOptions) (model.APIToken, error) {
	const query = `
		INSERT INTO api_tokens (id, user_id, name, token_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, name, token_hash, created_at, last_used`

	var t model.APIToken
	err := r.db.QueryRow(ctx, query, uuid.NewString(), opt.UserID, opt.Name, opt.TokenHash).Scan(
		&t.ID, &t.UserID, &t.Name, &t.TokenHash, &t.CreatedAt, &t.LastUsed,
	)
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/postgre.CreateToken: %v", err)
		return model.APIToken{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetToken returns zero-value APIToken (ID == "") when not found.
func (r *implRepository) GetToken(ctx context.Context, id string) (model.APIToken, error) {
	const query = `
		SELECT id, user_id, name, token_hash, created_at, last_used
		FROM api_tokens WHERE id = $1 LIMIT 1`

	var t model.APIToken
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.UserID, &t.Name, &t.TokenHash, &t.CreatedAt, &t.LastUsed)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.APIToken{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/postgre.GetToken: %v", err)
		return model.APIToken{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTokens returns a user's tokens, newest first.
func (r *implRepository) ListTokens(ctx context.Context, userID string) ([]model.APIToken, error) {
	const query = `
		SELECT id, user_id, name, token_hash, created_at, last_used
		FROM api_tokens WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/postgre.ListTokens: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.APIToken
	for rows.Next() {
		var t model.APIToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.TokenHash, &t.CreatedAt, &t.LastUsed); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, t)
	}
	return out, nil
}

// TouchToken records last use.
func (r *implRepository) TouchToken(ctx context.Context, id string) error {
	const query = `UPDATE api_tokens SET last_used = NOW() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "auth/repository/postgre.TouchToken: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
