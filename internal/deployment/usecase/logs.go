package usecase

import (
	"context"
	"sync"
	"time"

	"skylift/internal/deployment"
	"skylift/internal/deployment/repository"
	"skylift/internal/model"
)

const (
	defaultTail  = 100
	followBuffer = 64
)

// resolveTarget finds the deployment logs are asked for, enforcing
// ownership. Empty DeploymentID means the latest deployment.
func (uc *implUseCase) resolveTarget(ctx context.Context, sc model.Scope, input deployment.LogsInput) (model.Deployment, error) {
	p, err := uc.projects.GetOwned(ctx, sc, input.ProjectID)
	if err != nil {
		return model.Deployment{}, err
	}

	if input.DeploymentID == "" {
		d, err := uc.repo.Latest(ctx, p.ID)
		if err != nil {
			return model.Deployment{}, err
		}
		if d.ID == "" {
			return model.Deployment{}, deployment.ErrNoDeployments
		}
		return d, nil
	}

	d, err := uc.repo.GetOne(ctx, repository.GetOneOptions{ID: input.DeploymentID, ProjectID: p.ID})
	if err != nil {
		return model.Deployment{}, err
	}
	if d.ID == "" {
		return model.Deployment{}, deployment.ErrNotFound
	}
	return d, nil
}

// Logs returns the last Tail persisted lines of a deployment.
func (uc *implUseCase) Logs(ctx context.Context, sc model.Scope, input deployment.LogsInput) (deployment.LogsOutput, error) {
	d, err := uc.resolveTarget(ctx, sc, input)
	if err != nil {
		return deployment.LogsOutput{}, err
	}

	tail := input.Tail
	if tail <= 0 {
		tail = defaultTail
	}

	lines, err := uc.repo.TailLogs(ctx, d.ID, tail)
	if err != nil {
		uc.l.Errorf(ctx, "deployment/usecase.Logs.TailLogs: %v", err)
		return deployment.LogsOutput{}, err
	}

	return deployment.LogsOutput{Deployment: d, Lines: lines}, nil
}

// Follow streams a deployment's log lines until it finishes or the
// caller cancels. Lines are read from the persisted log, so followers
// see output from workers running in other processes; the hub
// subscription only wakes the loop early when a publisher is local.
func (uc *implUseCase) Follow(ctx context.Context, sc model.Scope, input deployment.LogsInput) (<-chan model.LogLine, func(), error) {
	d, err := uc.resolveTarget(ctx, sc, input)
	if err != nil {
		return nil, nil, err
	}

	wake, unsubscribe := uc.hub.Subscribe(d.ID)

	out := make(chan model.LogLine, followBuffer)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			unsubscribe()
			close(done)
		})
	}

	go uc.followLoop(d, wake, out, done)
	return out, cancel, nil
}

// followLoop pumps persisted log lines into out. A follow opened
// mid-pipeline ends once the deployment goes live; one opened on an
// already active deployment keeps going until a terminal state.
func (uc *implUseCase) followLoop(d model.Deployment, wake <-chan model.LogLine, out chan<- model.LogLine, done <-chan struct{}) {
	defer close(out)

	ctx := context.Background()
	interval := uc.cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	stopOnActive := d.Status != model.DeploymentActive

	cursor := 0
	flush := func() bool {
		lines, err := uc.repo.ListLogsAfter(ctx, d.ID, cursor)
		if err != nil {
			uc.l.Errorf(ctx, "deployment/usecase.Follow.ListLogsAfter: %v", err)
			return true
		}
		for _, ln := range lines {
			select {
			case out <- ln:
				cursor = ln.Seq
			case <-done:
				return false
			}
		}
		return true
	}
	finished := func() bool {
		cur, err := uc.repo.GetOne(ctx, repository.GetOneOptions{ID: d.ID})
		if err != nil || cur.ID == "" {
			return false
		}
		return cur.Status.Terminal() || (stopOnActive && cur.Status == model.DeploymentActive)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !flush() {
			return
		}
		if finished() {
			flush()
			return
		}
		select {
		case <-done:
			return
		case <-ticker.C:
		case _, ok := <-wake:
			if !ok {
				// The local publisher closed the stream.
				flush()
				return
			}
		}
	}
}
