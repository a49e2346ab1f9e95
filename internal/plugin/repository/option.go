package repository

import "skylift/internal/model"

type CreateOptions struct {
	ProjectID string
	Kind      model.PluginKind
}

type GetOneOptions struct {
	ID        string
	ProjectID string
	Kind      model.PluginKind
}

type UpdateProvisionedOptions struct {
	ID            string
	Status        model.PluginStatus
	ConnectionURL string
}
