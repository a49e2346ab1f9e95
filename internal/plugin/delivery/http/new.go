package http

import (
	"skylift/internal/plugin"
	"skylift/pkg/log"
)

type handler struct {
	l  log.Logger
	uc plugin.UseCase
}

// New creates a new HTTP handler for the plugin domain.
func New(l log.Logger, uc plugin.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
