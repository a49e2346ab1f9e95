package repository

import (
	"context"

	"skylift/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Deployment, error)
	// GetOne returns zero-value Deployment (ID == "") when not found.
	GetOne(ctx context.Context, opt GetOneOptions) (model.Deployment, error)
	// Latest returns the newest deployment of a project.
	Latest(ctx context.Context, projectID string) (model.Deployment, error)
	ListByProject(ctx context.Context, projectID string) ([]model.Deployment, error)

	// ClaimQueued atomically takes one queued deployment for a worker
	// (FOR UPDATE SKIP LOCKED) and moves it to building. Zero-value
	// Deployment when the queue is empty.
	ClaimQueued(ctx context.Context) (model.Deployment, error)

	// Update applies the non-zero fields of opt.
	Update(ctx context.Context, opt UpdateOptions) error
	// IncrementRestarts bumps the crash-restart counter and returns the
	// new value.
	IncrementRestarts(ctx context.Context, id string) (int, error)

	// AppendLogs persists pipeline/runtime log lines in order.
	AppendLogs(ctx context.Context, lines []model.LogLine) error
	// TailLogs returns the last n lines of a deployment in ascending
	// sequence order.
	TailLogs(ctx context.Context, deploymentID string, n int) ([]model.LogLine, error)
	// ListLogsAfter returns every line with seq > afterSeq in ascending
	// sequence order. Followers use it as a cursor over the persisted
	// log.
	ListLogsAfter(ctx context.Context, deploymentID string, afterSeq int) ([]model.LogLine, error)
	// NextSeq returns the next log sequence number for a deployment.
	NextSeq(ctx context.Context, deploymentID string) (int, error)
}
