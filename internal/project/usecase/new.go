package usecase

import (
	"skylift/internal/project"
	"skylift/internal/project/repository"
	"skylift/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	repo repository.Repository
	deps project.StatusDeps
	l    log.Logger
}

// New creates a new project UseCase implementation.
func New(repo repository.Repository, deps project.StatusDeps, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		deps: deps,
		l:    l,
	}
}

// SetStatusDeps wires the read-side collaborators Status aggregates
// from. Sibling domains depend on this usecase for ownership checks,
// so they are constructed after it and attached here.
func (uc *implUseCase) SetStatusDeps(deps project.StatusDeps) {
	uc.deps = deps
}
