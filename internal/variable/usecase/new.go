package usecase

import (
	"skylift/internal/variable"
	"skylift/internal/variable/repository"
	"skylift/pkg/log"
)

// implUseCase is the private implementation of variable.UseCase.
type implUseCase struct {
	repo     repository.Repository
	projects variable.ProjectReader
	l        log.Logger
}

// New creates a new variable UseCase implementation.
func New(repo repository.Repository, projects variable.ProjectReader, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		projects: projects,
		l:        l,
	}
}
