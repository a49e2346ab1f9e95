package usecase

import (
	"skylift/internal/model"
	"skylift/internal/plugin"
	"skylift/internal/plugin/repository"
	"skylift/pkg/log"
)

// implUseCase is the private implementation of plugin.UseCase.
type implUseCase struct {
	repo         repository.Repository
	projects     plugin.ProjectReader
	variables    plugin.VariableInjector
	provisioners map[model.PluginKind]plugin.Provisioner
	l            log.Logger
}

// New creates a new plugin UseCase implementation.
func New(repo repository.Repository, projects plugin.ProjectReader, variables plugin.VariableInjector, provisioners []plugin.Provisioner, l log.Logger) *implUseCase {
	byKind := make(map[model.PluginKind]plugin.Provisioner, len(provisioners))
	for _, p := range provisioners {
		byKind[p.Kind()] = p
	}
	return &implUseCase{
		repo:         repo,
		projects:     projects,
		variables:    variables,
		provisioners: byKind,
		l:            l,
	}
}
