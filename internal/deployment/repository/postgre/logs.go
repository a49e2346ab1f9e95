package postgre

import (
	"context"

	"github.com/jackc/pgx/v5"

	repo "skylift/internal/deployment/repository"
	"skylift/internal/model"
)

// AppendLogs persists a batch of log lines in one round trip.
func (r *implRepository) AppendLogs(ctx context.Context, lines []model.LogLine) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	const query = `
		INSERT INTO deployment_logs (deployment_id, seq, stream, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	for _, ln := range lines {
		batch.Queue(query, ln.DeploymentID, ln.Seq, ln.Stream, ln.Message, ln.Timestamp)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.AppendLogs: %v", err)
		return repo.ErrFailedToLog
	}
	return nil
}

// TailLogs returns the last n lines in ascending sequence order.
func (r *implRepository) TailLogs(ctx context.Context, deploymentID string, n int) ([]model.LogLine, error) {
	const query = `
		SELECT deployment_id, seq, stream, message, created_at FROM (
			SELECT deployment_id, seq, stream, message, created_at
			FROM deployment_logs
			WHERE deployment_id = $1
			ORDER BY seq DESC
			LIMIT $2
		) t ORDER BY seq ASC`

	rows, err := r.db.Query(ctx, query, deploymentID, n)
	if err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.TailLogs: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.LogLine
	for rows.Next() {
		var ln model.LogLine
		if err := rows.Scan(&ln.DeploymentID, &ln.Seq, &ln.Stream, &ln.Message, &ln.Timestamp); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, ln)
	}
	return out, nil
}

// ListLogsAfter returns every line with seq > afterSeq in ascending
// sequence order.
func (r *implRepository) ListLogsAfter(ctx context.Context, deploymentID string, afterSeq int) ([]model.LogLine, error) {
	const query = `
		SELECT deployment_id, seq, stream, message, created_at
		FROM deployment_logs
		WHERE deployment_id = $1 AND seq > $2
		ORDER BY seq ASC`

	rows, err := r.db.Query(ctx, query, deploymentID, afterSeq)
	if err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.ListLogsAfter: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.LogLine
	for rows.Next() {
		var ln model.LogLine
		if err := rows.Scan(&ln.DeploymentID, &ln.Seq, &ln.Stream, &ln.Message, &ln.Timestamp); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, ln)
	}
	return out, nil
}

// NextSeq returns the next log sequence number for a deployment.
func (r *implRepository) NextSeq(ctx context.Context, deploymentID string) (int, error) {
	const query = `SELECT COALESCE(MAX(seq), 0) + 1 FROM deployment_logs WHERE deployment_id = $1`

	var n int
	if err := r.db.QueryRow(ctx, query, deploymentID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "deployment/repository/postgre.NextSeq: %v", err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}
