package postgre

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skylift/internal/model"
	repo "skylift/internal/variable/repository"
)

// Upsert inserts or replaces a variable keyed by (project_id, key).
func (r *implRepository) Upsert(ctx context.Context, opt repo.UpsertOptions) (model.Variable, error) {
	const query = `
		INSERT INTO variables (id, project_id, key, value, injected, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (project_id, key)
		DO UPDATE SET value = EXCLUDED.value, injected = EXCLUDED.injected, updated_at = NOW()
		RETURNING id, project_id, key, value, injected, created_at, updated_at`

	var v model.Variable
	err := r.db.QueryRow(ctx, query, uuid.NewString(), opt.ProjectID, opt.Key, opt.Value, opt.Injected).Scan(
		&v.ID, &v.ProjectID, &v.Key, &v.Value, &v.Injected, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "variable/repository/postgre.Upsert: %v", err)
		return model.Variable{}, repo.ErrFailedToUpsert
	}
	return v, nil
}

// GetOne returns zero-value Variable (ID == "") when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Variable, error) {
	const query = `
		SELECT id, project_id, key, value, injected, created_at, updated_at
		FROM variables WHERE project_id = $1 AND key = $2 LIMIT 1`

	var v model.Variable
	err := r.db.QueryRow(ctx, query, opt.ProjectID, opt.Key).Scan(
		&v.ID, &v.ProjectID, &v.Key, &v.Value, &v.Injected, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Variable{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "variable/repository/postgre.GetOne: %v", err)
		return model.Variable{}, repo.ErrFailedToGet
	}
	return v, nil
}

// List returns all variables for a project, sorted by key.
func (r *implRepository) List(ctx context.Context, projectID string) ([]model.Variable, error) {
	const query = `
		SELECT id, project_id, key, value, injected, created_at, updated_at
		FROM variables WHERE project_id = $1 ORDER BY key`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		r.l.Errorf(ctx, "variable/repository/postgre.List: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var vars []model.Variable
	for rows.Next() {
		var v model.Variable
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.Key, &v.Value, &v.Injected, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// Delete removes a variable; ErrNotFound when no row matched.
func (r *implRepository) Delete(ctx context.Context, projectID, key string) error {
	const query = `DELETE FROM variables WHERE project_id = $1 AND key = $2`

	tag, err := r.db.Exec(ctx, query, projectID, key)
	if err != nil {
		r.l.Errorf(ctx, "variable/repository/postgre.Delete: %v", err)
		return repo.ErrFailedToDelete
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
