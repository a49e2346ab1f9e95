package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skylift/internal/model"
	repo "skylift/internal/project/repository"
)

// Create inserts a new project row and returns the created entity.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Project, error) {
	const query = `
		INSERT INTO projects (id, name, slug, owner_id, environment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, name, slug, owner_id, environment, COALESCE(active_deployment_id, ''), created_at, updated_at`

	var p model.Project
	err := r.db.QueryRow(ctx, query, uuid.NewString(), opt.Name, opt.Slug, opt.OwnerID, string(opt.Environment)).Scan(
		&p.ID, &p.Name, &p.Slug, &p.OwnerID, &p.Environment, &p.ActiveDeploymentID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "project/repository/postgre.Create: %v", err)
		return model.Project{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOne retrieves a single project by the provided filters (AND condition).
// Returns zero-value Project (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Project, error) {
	var conds []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Slug != "" {
		args = append(args, opt.Slug)
		conds = append(conds, fmt.Sprintf("slug = $%d", len(args)))
	}
	if opt.OwnerID != "" {
		args = append(args, opt.OwnerID)
		conds = append(conds, fmt.Sprintf("owner_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return model.Project{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(`
		SELECT id, name, slug, owner_id, environment, COALESCE(active_deployment_id, ''), created_at, updated_at
		FROM projects WHERE %s LIMIT 1`, strings.Join(conds, " AND "))

	var p model.Project
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.Slug, &p.OwnerID, &p.Environment, &p.ActiveDeploymentID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "project/repository/postgre.GetOne: %v", err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return p, nil
}

// List returns all projects for an owner, newest first.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Project, error) {
	const query = `
		SELECT id, name, slug, owner_id, environment, COALESCE(active_deployment_id, ''), created_at, updated_at
		FROM projects WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "project/repository/postgre.List: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.OwnerID, &p.Environment, &p.ActiveDeploymentID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// UpdateActiveDeployment points the project at a new serving deployment.
func (r *implRepository) UpdateActiveDeployment(ctx context.Context, projectID, deploymentID string) error {
	const query = `UPDATE projects SET active_deployment_id = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, deploymentID, projectID)
	if err != nil {
		r.l.Errorf(ctx, "project/repository/postgre.UpdateActiveDeployment: %v", err)
		return repo.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrFailedToUpdate
	}
	return nil
}
