package usecase

import (
	"context"

	"skylift/internal/model"
	"skylift/internal/project"
)

// Status aggregates the operator-facing view of a project: the deployment
// serving traffic, the most recent deployment, attached plugins and domains.
// Collaborator failures degrade the view rather than failing it outright;
// ownership and project lookup errors still fail.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope, id string) (project.StatusOutput, error) {
	p, err := uc.GetOwned(ctx, sc, id)
	if err != nil {
		return project.StatusOutput{}, err
	}

	out := project.StatusOutput{Project: p}

	if uc.deps.Deployments != nil {
		if p.ActiveDeploymentID != "" {
			if d, err := uc.deps.Deployments.Get(ctx, p.ActiveDeploymentID); err == nil {
				out.ActiveDeployment = &d
			} else {
				uc.l.Warnf(ctx, "uc.Status active deployment lookup: %v", err)
			}
		}
		if d, err := uc.deps.Deployments.Latest(ctx, p.ID); err == nil && d.ID != "" {
			out.LatestDeployment = &d
		}
	}

	if uc.deps.Plugins != nil {
		plugins, err := uc.deps.Plugins.ListByProject(ctx, p.ID)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Status plugins: %v", err)
		} else {
			out.Plugins = plugins
		}
	}

	if uc.deps.Domains != nil {
		domains, err := uc.deps.Domains.ListByProject(ctx, p.ID)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Status domains: %v", err)
		} else {
			out.Domains = domains
		}
	}

	return out, nil
}
