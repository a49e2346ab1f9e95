package usecase

import (
	"context"

	"skylift/internal/model"
	"skylift/internal/project"
	repo "skylift/internal/project/repository"
	"skylift/pkg/namegen"
)

// Create provisions a new project after checking for slug uniqueness
// within the owner's account.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateInput) (project.CreateOutput, error) {
	slug := namegen.Slugify(input.Name)
	if slug == "" {
		return project.CreateOutput{}, project.ErrInvalidName
	}

	existing, err := uc.repo.GetOne(ctx, repo.GetOneOptions{Slug: slug, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOne: %v", err)
		return project.CreateOutput{}, err
	}
	if existing.ID != "" {
		return project.CreateOutput{}, project.ErrDuplicateName
	}

	env := input.Environment
	if env == "" {
		env = model.EnvironmentProduction
	}

	p, err := uc.repo.Create(ctx, repo.CreateOptions{
		Name:        input.Name,
		Slug:        slug,
		OwnerID:     sc.UserID,
		Environment: env,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return project.CreateOutput{}, err
	}

	return project.CreateOutput{Project: p}, nil
}
