package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	repo "skylift/internal/deployment/repository"
	"skylift/internal/model"
)

const deploymentColumns = `id, project_id, status, source_path, COALESCE(image_ref, ''), COALESCE(failed_step, ''), restarts, created_at, started_at, finished_at`

func scanDeployment(row pgx.Row) (model.Deployment, error) {
	var d model.Deployment
	err := row.Scan(&d.ID, &d.ProjectID, &d.Status, &d.SourcePath, &d.ImageRef, &d.FailedStep, &d.Restarts, &d.CreatedAt, &d.StartedAt, &d.FinishedAt)
	return d, err
}

// Create inserts a queued deployment with the caller-assigned id.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Deployment, error) {
	query := fmt.Sprintf(`
		INSERT INTO deployments (id, project_id, status, source_path, restarts, created_at)
		VALUES ($1, $2, $3, $4, 0, NOW())
		RETURNING %s`, deploymentColumns)

	d, err := scanDeployment(r.db.QueryRow(ctx, query, opt.ID, opt.ProjectID, string(model.DeploymentQueued), opt.SourcePath))
	if err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.Create: %v", err)
		return model.Deployment{}, repo.ErrFailedToInsert
	}
	return d, nil
}

// GetOne retrieves a single deployment by the provided filters (AND
// condition). Returns zero-value Deployment (ID == "") when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Deployment, error) {
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
	if opt.Status != "" {
		args = append(args, string(opt.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return model.Deployment{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(`SELECT %s FROM deployments WHERE %s ORDER BY created_at DESC LIMIT 1`,
		deploymentColumns, strings.Join(conds, " AND "))

	d, err := scanDeployment(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Deployment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.GetOne: %v", err)
		return model.Deployment{}, repo.ErrFailedToGet
	}
	return d, nil
}

// Latest returns the newest deployment of a project.
func (r *implRepository) Latest(ctx context.Context, projectID string) (model.Deployment, error) {
	return r.GetOne(ctx, repo.GetOneOptions{ProjectID: projectID})
}

// ListByProject returns a project's deployments, newest first.
func (r *implRepository) ListByProject(ctx context.Context, projectID string) ([]model.Deployment, error) {
	query := fmt.Sprintf(`SELECT %s FROM deployments WHERE project_id = $1 ORDER BY created_at DESC`, deploymentColumns)

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.ListByProject: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Deployment
	for rows.Next() {
		d, err := scanDeployment(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, d)
	}
	return out, nil
}

// ClaimQueued takes one queued deployment and moves it to building.
// SKIP LOCKED keeps concurrent workers off each other's claims.
func (r *implRepository) ClaimQueued(ctx context.Context) (model.Deployment, error) {
	query := fmt.Sprintf(`
		UPDATE deployments SET status = 'building', started_at = NOW()
		WHERE id = (
			SELECT id FROM deployments
			WHERE status = 'queued'
			ORDER BY created_at ASC
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING %s`, deploymentColumns)

	d, err := scanDeployment(r.db.QueryRow(ctx, query))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Deployment{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.ClaimQueued: %v", err)
		return model.Deployment{}, repo.ErrFailedToClaim
	}
	return d, nil
}

// Update applies the non-zero fields of opt.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) error {
	var sets []string
	var args []any

	if opt.Status != "" {
		args = append(args, string(opt.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if opt.ImageRef != "" {
		args = append(args, opt.ImageRef)
		sets = append(sets, fmt.Sprintf("image_ref = $%d", len(args)))
	}
	if opt.FailedStep != "" {
		args = append(args, opt.FailedStep)
		sets = append(sets, fmt.Sprintf("failed_step = $%d", len(args)))
	}
	if opt.StartedAt != nil {
		args = append(args, *opt.StartedAt)
		sets = append(sets, fmt.Sprintf("started_at = $%d", len(args)))
	}
	if opt.FinishedAt != nil {
		args = append(args, *opt.FinishedAt)
		sets = append(sets, fmt.Sprintf("finished_at = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, opt.ID)
	query := fmt.Sprintf(`UPDATE deployments SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.Update: %v", err)
		return repo.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrFailedToUpdate
	}
	return nil
}

// IncrementRestarts bumps the crash-restart counter.
func (r *implRepository) IncrementRestarts(ctx context.Context, id string) (int, error) {
	const query = `UPDATE deployments SET restarts = restarts + 1 WHERE id = $1 RETURNING restarts`

	var n int
	if err := r.db.QueryRow(ctx, query, id).Scan(&n); err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.IncrementRestarts: %v", err)
		return 0, repo.ErrFailedToUpdate
	}
	return n, nil
}
