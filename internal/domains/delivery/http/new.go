package http

import (
	"skylift/internal/domains"
	"skylift/pkg/log"
)

type handler struct {
	l  log.Logger
	uc domains.UseCase
}

// New creates a new HTTP handler for the domains domain.
func New(l log.Logger, uc domains.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
