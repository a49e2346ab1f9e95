package usecase

import (
	"context"

	"skylift/internal/model"
	"skylift/internal/plugin"
	repo "skylift/internal/plugin/repository"
)

// ConnectionURL returns the unmasked DSN for `connect`.
func (uc *implUseCase) ConnectionURL(ctx context.Context, sc model.Scope, projectID string, kind model.PluginKind) (string, error) {
	if !kind.Valid() {
		return "", plugin.ErrUnsupportedKind
	}

	if _, err := uc.projects.GetOwned(ctx, sc, projectID); err != nil {
		return "", err
	}

	p, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ProjectID: projectID, Kind: kind})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ConnectionURL GetOne: %v", err)
		return "", err
	}
	if p.ID == "" || p.Status != model.PluginStatusRunning {
		return "", plugin.ErrNotFound
	}
	return p.ConnectionURL, nil
}

// ListByProject returns the project's plugins.
func (uc *implUseCase) ListByProject(ctx context.Context, projectID string) ([]model.Plugin, error) {
	plugins, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByProject: %v", err)
		return nil, err
	}
	return plugins, nil
}
