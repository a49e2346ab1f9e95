package usecase

import (
	"skylift/config"
	"skylift/internal/deployment"
	"skylift/internal/deployment/logstream"
	"skylift/internal/deployment/repository"
	"skylift/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	projects deployment.ProjectReader
	hub      *logstream.Hub
	cfg      config.BuilderConfig
}

var _ deployment.UseCase = &implUseCase{}

// New creates the deployment usecase.
func New(l log.Logger, repo repository.Repository, projects deployment.ProjectReader, hub *logstream.Hub, cfg config.BuilderConfig) deployment.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		projects: projects,
		hub:      hub,
		cfg:      cfg,
	}
}
