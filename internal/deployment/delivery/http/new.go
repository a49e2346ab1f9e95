package http

import (
	"skylift/internal/deployment"
	"skylift/pkg/log"
)

type handler struct {
	l  log.Logger
	uc deployment.UseCase
}

// New creates a new HTTP handler for the deployment domain.
func New(l log.Logger, uc deployment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
