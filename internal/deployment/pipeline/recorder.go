package pipeline

import (
	"context"
	"time"

	"skylift/internal/deployment/logstream"
	"skylift/internal/deployment/repository"
	"skylift/internal/model"
	"skylift/pkg/log"
)

// recorder persists pipeline log lines and fans them out to live
// followers in one call.
type recorder struct {
	l            log.Logger
	repo         repository.Repository
	hub          *logstream.Hub
	deploymentID string
	seq          int
}

func newRecorder(ctx context.Context, l log.Logger, repo repository.Repository, hub *logstream.Hub, deploymentID string) *recorder {
	seq, err := repo.NextSeq(ctx, deploymentID)
	if err != nil {
		// Start at 1; ordering within this run still holds.
		seq = 1
	}
	return &recorder{l: l, repo: repo, hub: hub, deploymentID: deploymentID, seq: seq}
}

// line appends one log line on the given stream.
func (r *recorder) line(ctx context.Context, stream, message string) {
	ln := model.LogLine{
		DeploymentID: r.deploymentID,
		Seq:          r.seq,
		Stream:       stream,
		Message:      message,
		Timestamp:    time.Now().UTC(),
	}
	r.seq++

	if err := r.repo.AppendLogs(ctx, []model.LogLine{ln}); err != nil {
		r.l.Warnf(ctx, "pipeline.recorder append: %v", err)
	}
	r.hub.Publish(ln)
}

// streamFunc adapts line to the logf callback builders and runtimes take.
func (r *recorder) streamFunc(ctx context.Context, stream string) func(string) {
	return func(msg string) { r.line(ctx, stream, msg) }
}
