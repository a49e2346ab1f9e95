package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "skylift/internal/domains/repository"
	"skylift/internal/model"
)

const domainColumns = `id, project_id, hostname, kind, status, verification_token, created_at, updated_at`

func scanDomain(row pgx.Row) (model.Domain, error) {
	var d model.Domain
	err := row.Scan(&d.ID, &d.ProjectID, &d.Hostname, &d.Kind, &d.Status, &d.VerificationToken, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// Create inserts a new domain row. Hostname has a unique index, so a
// duplicate surfaces as ErrFailedToInsert.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Domain, error) {
	query := fmt.Sprintf(`
		INSERT INTO domains (id, project_id, hostname, kind, status, verification_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, domainColumns)

	d, err := scanDomain(r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.ProjectID, opt.Hostname, string(opt.Kind), string(opt.Status), opt.VerificationToken,
	))
	if err != nil {
		r.l.Errorf(ctx, "domains/repository/postgre.Create: %v", err)
		return model.Domain{}, repo.ErrFailedToInsert
	}
	return d, nil
}

// GetOne retrieves a single domain by the provided filters (AND condition).
// Returns zero-value Domain (ID == "") when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Domain, error) {
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
	if opt.Hostname != "" {
		args = append(args, opt.Hostname)
		conds = append(conds, fmt.Sprintf("hostname = $%d", len(args)))
	}
	if opt.Kind != "" {
		args = append(args, string(opt.Kind))
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if len(conds) == 0 {
		return model.Domain{}, repo.ErrFailedToGet
	}

	query := fmt.Sprintf(`SELECT %s FROM domains WHERE %s LIMIT 1`, domainColumns, strings.Join(conds, " AND "))

	d, err := scanDomain(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Domain{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "domains/repository/postgre.GetOne: %v", err)
		return model.Domain{}, repo.ErrFailedToGet
	}
	return d, nil
}

// ListByProject returns the project's domains, generated first then by age.
func (r *implRepository) ListByProject(ctx context.Context, projectID string) ([]model.Domain, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM domains WHERE project_id = $1
		ORDER BY kind = 'generated' DESC, created_at ASC`, domainColumns)

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		r.l.Errorf(ctx, "domains/repository/postgre.ListByProject: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.Domain
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, d)
	}
	return out, nil
}

// UpdateStatus moves a domain between pending/active/disabled.
func (r *implRepository) UpdateStatus(ctx context.Context, id string, status model.DomainStatus) error {
	const query = `UPDATE domains SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, string(status), id)
	if err != nil {
		r.l.Errorf(ctx, "domains/repository/postgre.UpdateStatus: %v", err)
		return repo.ErrFailedToUpdate
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrFailedToUpdate
	}
	return nil
}
