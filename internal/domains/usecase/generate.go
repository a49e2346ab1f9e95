package usecase

import (
	"context"
	"fmt"

	"skylift/internal/domains"
	"skylift/internal/domains/repository"
	"skylift/internal/model"
	"skylift/pkg/namegen"
)

const generatedSuffixLen = 6

// Generate mints "<slug>-<suffix>.<zone>" for the project, once.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, projectID string) (domains.GenerateOutput, error) {
	p, err := uc.projects.GetOwned(ctx, sc, projectID)
	if err != nil {
		return domains.GenerateOutput{}, err
	}

	existing, err := uc.repo.GetOne(ctx, repository.GetOneOptions{
		ProjectID: p.ID,
		Kind:      model.DomainGenerated,
	})
	if err != nil {
		uc.l.Errorf(ctx, "domains/usecase.Generate.GetOne: %v", err)
		return domains.GenerateOutput{}, err
	}
	if existing.ID != "" {
		return domains.GenerateOutput{Domain: existing, Existed: true}, nil
	}

	hostname := fmt.Sprintf("%s-%s.%s", p.Slug, namegen.Suffix(generatedSuffixLen), uc.edgeCfg.Zone)
	d, err := uc.repo.Create(ctx, repository.CreateOptions{
		ProjectID: p.ID,
		Hostname:  hostname,
		Kind:      model.DomainGenerated,
		Status:    model.DomainStatusActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "domains/usecase.Generate.Create: %v", err)
		return domains.GenerateOutput{}, err
	}

	uc.l.Infof(ctx, "generated domain %s for project %s", hostname, p.ID)
	return domains.GenerateOutput{Domain: d}, nil
}

// List returns the project's domains after the ownership check.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, projectID string) ([]model.Domain, error) {
	p, err := uc.projects.GetOwned(ctx, sc, projectID)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListByProject(ctx, p.ID)
}

// ListByProject feeds project status aggregation and the edge router.
func (uc *implUseCase) ListByProject(ctx context.Context, projectID string) ([]model.Domain, error) {
	return uc.repo.ListByProject(ctx, projectID)
}
