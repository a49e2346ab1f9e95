package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"skylift/config"
	"skylift/config/postgre"
	"skylift/internal/deployment/logstream"
	"skylift/internal/deployment/pipeline"
	deploymentRepoPG "skylift/internal/deployment/repository/postgre"
	"skylift/internal/model"
	"skylift/internal/project"
	projectRepo "skylift/internal/project/repository"
	projectRepoPG "skylift/internal/project/repository/postgre"
	projectUC "skylift/internal/project/usecase"
	variableRepoPG "skylift/internal/variable/repository/postgre"
	variableUC "skylift/internal/variable/usecase"
	"skylift/pkg/log"
)

// projectStore adapts the project repository to what the pipeline needs.
type projectStore struct {
	repo projectRepo.Repository
}

func (s projectStore) Get(ctx context.Context, id string) (model.Project, error) {
	p, err := s.repo.GetOne(ctx, projectRepo.GetOneOptions{ID: id})
	if err != nil {
		return model.Project{}, err
	}
	if p.ID == "" {
		return model.Project{}, project.ErrNotFound
	}
	return p, nil
}

func (s projectStore) SetActiveDeployment(ctx context.Context, projectID, deploymentID string) error {
	return s.repo.UpdateActiveDeployment(ctx, projectID, deploymentID)
}

// main is the entry point for the deployment pipeline worker.
// It drains queued deployments and runs them through build, pre-deploy,
// start and promotion.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting deployment worker...")

	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, db)

	pRepo := projectRepoPG.New(db, logger)
	vRepo := variableRepoPG.New(db, logger)
	dRepo := deploymentRepoPG.New(db, logger)

	projects := projectUC.New(pRepo, project.StatusDeps{}, logger)
	variables := variableUC.New(vRepo, projects, logger)

	workers := cfg.Builder.Workers
	if workers <= 0 {
		workers = 1
	}

	hub := logstream.NewHub()
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		w := pipeline.NewWorker(logger, dRepo, projectStore{repo: pRepo}, variables, hub, nil, nil, cfg.Builder)
		go func() { errCh <- w.Run(ctx) }()
	}

	logger.Infof(ctx, "%d pipeline workers running, waiting for shutdown signal...", workers)
	for i := 0; i < workers; i++ {
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "Worker stopped with error: ", err)
		}
	}
	logger.Info(ctx, "Deployment worker stopped gracefully")
}
