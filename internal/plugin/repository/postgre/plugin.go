package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skylift/internal/model"
	repo "skylift/internal/plugin/repository"
)

// Create inserts a new plugin row in provisioning state.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Plugin, error) {
	const query = `
		INSERT INTO plugins (id, project_id, kind, status, connection_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '', NOW(), NOW())
		RETURNING id, project_id, kind, status, connection_url, created_at, updated_at`

	var p model.Plugin
	err := r.db.QueryRow(ctx, query, uuid.NewString(), opt.ProjectID, string(opt.Kind), string(model.PluginStatusProvisioning)).Scan(
		&p.ID, &p.ProjectID, &p.Kind, &p.Status, &p.ConnectionURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "plugin/repository/postgre.Create: %v", err)
		return model.Plugin{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOne retrieves a single plugin by the provided filters (AND condition).
// Returns zero-value Plugin (ID == "") when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Plugin, error) {
	var conds []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.ProjectID != "" {
		args = append(args, opt.ProjectID)
		conds = append(conds, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if opt.Kind != "" {
		args = append(args, string(opt.Kind))
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if len(conds) == 0 {
		return model.Plugin{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(`
		SELECT id, project_id, kind, status, connection_url, created_at, updated_at
		FROM plugins WHERE %s LIMIT 1`, strings.Join(conds, " AND "))

	var p model.Plugin
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.ProjectID, &p.Kind, &p.Status, &p.ConnectionURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Plugin{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "plugin/repository/postgre.GetOne: %v", err)
		return model.Plugin{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListByProject returns all plugins attached to a project.
func (r *implRepository) ListByProject(ctx context.Context, projectID string) ([]model.Plugin, error) {
	const query = `
		SELECT id, project_id, kind, status, connection_url, created_at, updated_at
		FROM plugins WHERE project_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		r.l.Errorf(ctx, "plugin/repository/postgre.ListByProject: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var plugins []model.Plugin
	for rows.Next() {
		var p model.Plugin
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Kind, &p.Status, &p.ConnectionURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}

// ListByKind returns all plugins of a kind across the whole platform.
func (r *implRepository) ListByKind(ctx context.Context, kind model.PluginKind) ([]model.Plugin, error) {
	const query = `
		SELECT id, project_id, kind, status, connection_url, created_at, updated_at
		FROM plugins WHERE kind = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, string(kind))
	if err != nil {
		r.l.Errorf(ctx, "plugin/repository/postgre.ListByKind: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var plugins []model.Plugin
	for rows.Next() {
		var p model.Plugin
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Kind, &p.Status, &p.ConnectionURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}

// UpdateProvisioned records the outcome of provisioning.
func (r *implRepository) UpdateProvisioned(ctx context.Context, opt repo.UpdateProvisionedOptions) error {
	const query = `
		UPDATE plugins SET status = $1, connection_url = $2, updated_at = NOW() WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, string(opt.Status), opt.ConnectionURL, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "plugin/repository/postgre.UpdateProvisioned: %v", err)
		return repo.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrFailedToUpdate
	}
	return nil
}
