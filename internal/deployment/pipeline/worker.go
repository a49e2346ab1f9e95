// Package pipeline runs queued deployments through build, pre-deploy,
// start and promotion.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"skylift/config"
	"skylift/internal/deployment/logstream"
	"skylift/internal/deployment/repository"
	"skylift/internal/model"
	"skylift/pkg/log"
)

// appPort is the port injected into every deployment's environment.
const appPort = 8080

const (
	streamBuild  = "build"
	streamDeploy = "deploy"
)

// Worker drains the deployment queue and runs the pipeline on each
// claimed deployment.
type Worker struct {
	l        log.Logger
	repo     repository.Repository
	projects ProjectStore
	env      EnvResolver
	hub      *logstream.Hub
	builder  Builder
	runtime  Runtime
	cfg      config.BuilderConfig
}

// NewWorker creates a pipeline worker. Nil builder/runtime fall back to
// the built-in simulated implementations.
func NewWorker(l log.Logger, repo repository.Repository, projects ProjectStore, env EnvResolver, hub *logstream.Hub, builder Builder, runtime Runtime, cfg config.BuilderConfig) *Worker {
	if builder == nil {
		builder = NewSimBuilder()
	}
	if runtime == nil {
		runtime = NewSimRuntime()
	}
	return &Worker{
		l:        l,
		repo:     repo,
		projects: projects,
		env:      env,
		hub:      hub,
		builder:  builder,
		runtime:  runtime,
		cfg:      cfg,
	}
}

// Run polls for queued deployments until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	interval := w.cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.l.Infof(ctx, "pipeline worker started, polling every %s", interval)
	for {
		select {
		case <-ctx.Done():
			w.l.Infof(ctx, "pipeline worker stopping")
			return ctx.Err()
		case <-ticker.C:
			for {
				d, err := w.repo.ClaimQueued(ctx)
				if err != nil {
					w.l.Errorf(ctx, "pipeline.ClaimQueued: %v", err)
					break
				}
				if d.ID == "" {
					break
				}
				w.Process(ctx, d)
			}
		}
	}
}

// Process runs one claimed deployment through the pipeline. The
// deployment arrives in building state.
func (w *Worker) Process(ctx context.Context, d model.Deployment) {
	rec := newRecorder(ctx, w.l, w.repo, w.hub, d.ID)
	rec.line(ctx, streamBuild, fmt.Sprintf("deployment %s started", shortID(d.ID)))

	// Build.
	src, err := InspectArchive(d.SourcePath)
	if err != nil {
		w.fail(ctx, rec, d, streamBuild, "build", err)
		return
	}
	if src.HasManifest {
		rec.line(ctx, streamBuild, "loaded skylift.yaml")
	}

	imageRef, err := w.builder.Build(ctx, BuildRequest{Deployment: d, Source: src}, rec.streamFunc(ctx, streamBuild))
	if err != nil {
		w.fail(ctx, rec, d, streamBuild, "build", err)
		return
	}
	d.ImageRef = imageRef

	if err := w.transition(ctx, d.ID, model.DeploymentBuilding, model.DeploymentDeploying, repository.UpdateOptions{ImageRef: imageRef}); err != nil {
		w.fail(ctx, rec, d, streamDeploy, "deploy", err)
		return
	}

	// Pre-deploy hook.
	if hook := src.Manifest.Deploy.PreDeploy; hook != "" {
		rec.line(ctx, streamDeploy, fmt.Sprintf("running pre-deploy hook: %s", hook))
	}

	// Environment.
	env, err := w.env.Resolve(ctx, d.ProjectID, appPort)
	if err != nil {
		w.fail(ctx, rec, d, streamDeploy, "deploy", err)
		return
	}
	rec.line(ctx, streamDeploy, fmt.Sprintf("resolved %d environment variables", len(env)))

	// Start + health check.
	crashed, err := w.runtime.Start(ctx, StartRequest{
		Deployment: d,
		ImageRef:   imageRef,
		Env:        env,
		Manifest:   src.Manifest,
	}, rec.streamFunc(ctx, streamDeploy))
	if err != nil {
		w.fail(ctx, rec, d, streamDeploy, "deploy", err)
		return
	}

	// Promote, demoting the previous active deployment.
	if err := w.promote(ctx, rec, d); err != nil {
		w.fail(ctx, rec, d, streamDeploy, "promote", err)
		return
	}

	now := time.Now().UTC()
	if err := w.transition(ctx, d.ID, model.DeploymentDeploying, model.DeploymentActive, repository.UpdateOptions{FinishedAt: &now}); err != nil {
		w.l.Errorf(ctx, "pipeline.Process activate %s: %v", d.ID, err)
		return
	}
	rec.line(ctx, streamDeploy, "deployment live")
	w.hub.Close(d.ID)
	w.l.Infof(ctx, "deployment %s active for project %s", d.ID, d.ProjectID)

	go w.supervise(ctx, d.ID, crashed)
}

// supervise watches a live instance's crash channel and applies the
// restart policy each time it dies. A closed channel means the
// instance stopped for good; a nil one that the runtime does not
// report crashes.
func (w *Worker) supervise(ctx context.Context, deploymentID string, crashed <-chan error) {
	for crashed != nil {
		select {
		case <-ctx.Done():
			return
		case cause, ok := <-crashed:
			if !ok {
				return
			}
			w.l.Warnf(ctx, "deployment %s instance died: %v", deploymentID, cause)
			next, err := w.HandleCrash(ctx, deploymentID)
			if err != nil {
				w.l.Errorf(ctx, "pipeline.supervise %s: %v", deploymentID, err)
				return
			}
			crashed = next
		}
	}
}

// promote points the project at this deployment and marks the previous
// active one removed.
func (w *Worker) promote(ctx context.Context, rec *recorder, d model.Deployment) error {
	p, err := w.projects.Get(ctx, d.ProjectID)
	if err != nil {
		return err
	}

	if err := w.projects.SetActiveDeployment(ctx, d.ProjectID, d.ID); err != nil {
		return err
	}

	prev := p.ActiveDeploymentID
	if prev != "" && prev != d.ID {
		now := time.Now().UTC()
		if err := w.repo.Update(ctx, repository.UpdateOptions{
			ID:         prev,
			Status:     model.DeploymentRemoved,
			FinishedAt: &now,
		}); err != nil {
			w.l.Warnf(ctx, "pipeline.promote demote %s: %v", prev, err)
		}
		w.hub.Close(prev)
		rec.line(ctx, streamDeploy, fmt.Sprintf("replaced deployment %s", shortID(prev)))
	}
	return nil
}

// HandleCrash applies the restart policy to an active deployment whose
// instance died: restart with backoff while budget remains, then mark
// the deployment crashed. The returned channel reports crashes of the
// restarted instance; it is nil when nothing was restarted.
func (w *Worker) HandleCrash(ctx context.Context, deploymentID string) (<-chan error, error) {
	d, err := w.repo.GetOne(ctx, repository.GetOneOptions{ID: deploymentID})
	if err != nil {
		return nil, err
	}
	if d.ID == "" || d.Status != model.DeploymentActive {
		return nil, nil
	}

	rec := newRecorder(ctx, w.l, w.repo, w.hub, d.ID)

	budget := w.cfg.RestartBudget
	if src, err := InspectArchive(d.SourcePath); err == nil && src.Manifest.Restart.MaxRetries >= 0 {
		budget = src.Manifest.Restart.MaxRetries
	}

	restarts, err := w.repo.IncrementRestarts(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	if restarts > budget {
		rec.line(ctx, streamDeploy, fmt.Sprintf("crash loop: restart budget of %d exhausted", budget))
		now := time.Now().UTC()
		if err := w.repo.Update(ctx, repository.UpdateOptions{
			ID:         d.ID,
			Status:     model.DeploymentCrashed,
			FinishedAt: &now,
		}); err != nil {
			return nil, err
		}
		w.hub.Close(d.ID)
		w.l.Warnf(ctx, "deployment %s crashed after %d restarts", d.ID, restarts-1)
		return nil, nil
	}

	backoff := w.cfg.RestartBackoff * time.Duration(restarts)
	rec.line(ctx, streamDeploy, fmt.Sprintf("instance crashed, restarting in %s (%d/%d)", backoff, restarts, budget))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(backoff):
	}

	env, err := w.env.Resolve(ctx, d.ProjectID, appPort)
	if err != nil {
		return nil, err
	}

	src, err := InspectArchive(d.SourcePath)
	if err != nil {
		return nil, err
	}
	return w.runtime.Start(ctx, StartRequest{
		Deployment: d,
		ImageRef:   d.ImageRef,
		Env:        env,
		Manifest:   src.Manifest,
	}, rec.streamFunc(ctx, streamDeploy))
}

// transition applies a validated status change plus extra fields.
func (w *Worker) transition(ctx context.Context, id string, from, to model.DeploymentStatus, extra repository.UpdateOptions) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("illegal transition %s -> %s", from, to)
	}
	extra.ID = id
	extra.Status = to
	return w.repo.Update(ctx, extra)
}

// fail marks the deployment failed with the step recorded and tears
// down live followers.
func (w *Worker) fail(ctx context.Context, rec *recorder, d model.Deployment, stream, step string, cause error) {
	rec.line(ctx, stream, fmt.Sprintf("%s failed: %v", step, cause))

	now := time.Now().UTC()
	if err := w.repo.Update(ctx, repository.UpdateOptions{
		ID:         d.ID,
		Status:     model.DeploymentFailed,
		FailedStep: step,
		FinishedAt: &now,
	}); err != nil {
		w.l.Errorf(ctx, "pipeline.fail update %s: %v", d.ID, err)
	}
	w.hub.Close(d.ID)
	w.l.Warnf(ctx, "deployment %s failed at %s: %v", d.ID, step, cause)
}
