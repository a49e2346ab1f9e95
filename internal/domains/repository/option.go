package repository

import "skylift/internal/model"

type CreateOptions struct {
	ProjectID         string
	Hostname          string
	Kind              model.DomainKind
	Status            model.DomainStatus
	VerificationToken string
}

type GetOneOptions struct {
	ID        string
	ProjectID string
	Hostname  string
	Kind      model.DomainKind
}
