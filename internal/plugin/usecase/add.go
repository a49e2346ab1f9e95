package usecase

import (
	"context"
	"errors"

	"skylift/internal/model"
	"skylift/internal/plugin"
	repo "skylift/internal/plugin/repository"
)

// Add provisions a managed instance and publishes its connection URL as
// the kind's reserved variable. One plugin per kind per project; a
// plugin whose provisioning failed is re-provisioned in place.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input plugin.AddInput) (plugin.AddOutput, error) {
	if !input.Kind.Valid() {
		return plugin.AddOutput{}, plugin.ErrUnsupportedKind
	}
	prov, ok := uc.provisioners[input.Kind]
	if !ok {
		return plugin.AddOutput{}, plugin.ErrUnsupportedKind
	}

	project, err := uc.projects.GetOwned(ctx, sc, input.ProjectID)
	if err != nil {
		return plugin.AddOutput{}, err
	}

	existing, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ProjectID: project.ID, Kind: input.Kind})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add GetOne: %v", err)
		return plugin.AddOutput{}, err
	}
	if existing.ID != "" && existing.Status != model.PluginStatusFailed {
		return plugin.AddOutput{}, plugin.ErrAlreadyExists
	}

	target := existing
	if target.ID == "" {
		target, err = uc.repo.Create(ctx, repo.CreateOptions{ProjectID: project.ID, Kind: input.Kind})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Add Create: %v", err)
			return plugin.AddOutput{}, err
		}
	}

	dsn, err := prov.Provision(ctx, project)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add Provision %s: %v", input.Kind, err)
		if updErr := uc.repo.UpdateProvisioned(ctx, repo.UpdateProvisionedOptions{
			ID:     target.ID,
			Status: model.PluginStatusFailed,
		}); updErr != nil {
			uc.l.Errorf(ctx, "uc.Add mark failed: %v", updErr)
		}
		if errors.Is(err, plugin.ErrNoCapacity) {
			return plugin.AddOutput{}, plugin.ErrNoCapacity
		}
		return plugin.AddOutput{}, plugin.ErrProvisionFailed
	}

	if err := uc.repo.UpdateProvisioned(ctx, repo.UpdateProvisionedOptions{
		ID:            target.ID,
		Status:        model.PluginStatusRunning,
		ConnectionURL: dsn,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Add UpdateProvisioned: %v", err)
		return plugin.AddOutput{}, err
	}

	if err := uc.variables.SetInjected(ctx, project.ID, input.Kind.InjectedVariable(), dsn); err != nil {
		uc.l.Errorf(ctx, "uc.Add SetInjected: %v", err)
		return plugin.AddOutput{}, err
	}

	target.Status = model.PluginStatusRunning
	target.ConnectionURL = dsn
	return plugin.AddOutput{Plugin: target}, nil
}
