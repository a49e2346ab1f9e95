package usecase

import (
	"context"
	"errors"

	"skylift/internal/model"
	"skylift/internal/variable"
	repo "skylift/internal/variable/repository"
)

// Unset removes a user variable. Reserved and injected names are refused so
// plugin connection strings can only disappear with their plugin.
func (uc *implUseCase) Unset(ctx context.Context, sc model.Scope, input variable.UnsetInput) error {
	if _, err := uc.projects.GetOwned(ctx, sc, input.ProjectID); err != nil {
		return err
	}

	if model.ReservedVariables[input.Key] {
		return variable.ErrReservedKey
	}

	existing, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ProjectID: input.ProjectID, Key: input.Key})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Unset GetOne: %v", err)
		return err
	}
	if existing.ID == "" {
		return variable.ErrNotFound
	}
	if existing.Injected {
		return variable.ErrInjectedKey
	}

	if err := uc.repo.Delete(ctx, input.ProjectID, input.Key); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return variable.ErrNotFound
		}
		uc.l.Errorf(ctx, "uc.Unset Delete: %v", err)
		return err
	}
	return nil
}
