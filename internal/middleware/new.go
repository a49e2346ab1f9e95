package middleware

import (
	"context"

	"skylift/config"
	"skylift/internal/model"
	"skylift/pkg/log"
	"skylift/pkg/scope"
)

// TokenVerifier resolves "sk_"-prefixed personal access tokens,
// satisfied by the auth usecase.
type TokenVerifier interface {
	VerifyAPIToken(ctx context.Context, token string) (model.Scope, error)
}

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	apiTokens    TokenVerifier
	limiter      *rateLimiter
}

// New creates the middleware set. apiTokens may be nil, in which case
// only JWT credentials are accepted.
func New(l log.Logger, sm scope.Manager, apiTokens TokenVerifier, rlCfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:            l,
		scopeManager: sm,
		apiTokens:    apiTokens,
		limiter:      newRateLimiter(rlCfg),
	}
}
