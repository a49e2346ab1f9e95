package http

import (
	"skylift/internal/variable"
	"skylift/pkg/log"
)

type handler struct {
	l  log.Logger
	uc variable.UseCase
}

// New creates a new HTTP handler for the variable domain.
func New(l log.Logger, uc variable.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
