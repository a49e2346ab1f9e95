package usecase

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"skylift/config"
	"skylift/internal/auth"
	"skylift/internal/auth/repository"
	"skylift/internal/model"
	"skylift/pkg/log"
	"skylift/pkg/scope"
)

const tokenCacheSize = 1024

type implUseCase struct {
	l            log.Logger
	repo         repository.Repository
	scopeManager scope.Manager
	cfg          config.AuthConfig

	// verified API tokens, cached so bcrypt runs once per TTL window.
	tokenCache *expirable.LRU[string, model.Scope]
}

var _ auth.UseCase = &implUseCase{}

// New creates the auth usecase.
func New(l log.Logger, repo repository.Repository, sm scope.Manager, cfg config.AuthConfig) auth.UseCase {
	return &implUseCase{
		l:            l,
		repo:         repo,
		scopeManager: sm,
		cfg:          cfg,
		tokenCache:   expirable.NewLRU[string, model.Scope](tokenCacheSize, nil, cfg.TokenCacheTTL),
	}
}
