package usecase

import (
	"context"

	"skylift/internal/model"
	"skylift/internal/project"
	repo "skylift/internal/project/repository"
)

// GetOwned loads a project and enforces that the caller owns it.
func (uc *implUseCase) GetOwned(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	p, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetOwned GetOne: %v", err)
		return model.Project{}, err
	}
	if p.ID == "" {
		return model.Project{}, project.ErrNotFound
	}
	if p.OwnerID != sc.UserID {
		return model.Project{}, project.ErrForbidden
	}
	return p, nil
}

// Detail returns a single owned project.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.DetailOutput, error) {
	p, err := uc.GetOwned(ctx, sc, id)
	if err != nil {
		return project.DetailOutput{}, err
	}
	return project.DetailOutput{Project: p}, nil
}

// List returns all projects owned by the caller.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (project.ListOutput, error) {
	projects, err := uc.repo.List(ctx, repo.ListOptions{OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return project.ListOutput{}, err
	}
	return project.ListOutput{Projects: projects}, nil
}
