package usecase

import (
	"context"
	"net"

	"skylift/config"
	"skylift/internal/domains"
	"skylift/internal/domains/repository"
	"skylift/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	projects domains.ProjectReader
	resolver domains.TXTResolver
	edgeCfg  config.EdgeConfig
}

var _ domains.UseCase = &implUseCase{}

// New creates the domains usecase.
func New(l log.Logger, repo repository.Repository, projects domains.ProjectReader, resolver domains.TXTResolver, edgeCfg config.EdgeConfig) domains.UseCase {
	if resolver == nil {
		resolver = netResolver{}
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		projects: projects,
		resolver: resolver,
		edgeCfg:  edgeCfg,
	}
}

// netResolver is the default TXT resolver backed by the system DNS.
type netResolver struct{}

func (netResolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	return net.DefaultResolver.LookupTXT(ctx, name)
}
