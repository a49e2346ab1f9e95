package usecase

import (
	"context"

	"skylift/internal/deployment"
	"skylift/internal/deployment/repository"
	"skylift/internal/model"
)

// Detail returns one deployment of a project owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, projectID, deploymentID string) (model.Deployment, error) {
	p, err := uc.projects.GetOwned(ctx, sc, projectID)
	if err != nil {
		return model.Deployment{}, err
	}

	d, err := uc.repo.GetOne(ctx, repository.GetOneOptions{ID: deploymentID, ProjectID: p.ID})
	if err != nil {
		uc.l.Errorf(ctx, "deployment/usecase.Detail: %v", err)
		return model.Deployment{}, err
	}
	if d.ID == "" {
		return model.Deployment{}, deployment.ErrNotFound
	}
	return d, nil
}

// List returns a project's deployments, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, projectID string) ([]model.Deployment, error) {
	p, err := uc.projects.GetOwned(ctx, sc, projectID)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByProject(ctx, p.ID)
}

// Latest feeds project status aggregation.
func (uc *implUseCase) Latest(ctx context.Context, projectID string) (model.Deployment, error) {
	return uc.repo.Latest(ctx, projectID)
}

// Get feeds project status aggregation.
func (uc *implUseCase) Get(ctx context.Context, id string) (model.Deployment, error) {
	return uc.repo.GetOne(ctx, repository.GetOneOptions{ID: id})
}
