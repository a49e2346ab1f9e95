package plugin

import "skylift/internal/model"

type AddInput struct {
	ProjectID string
	Kind      model.PluginKind
}

type AddOutput struct {
	Plugin model.Plugin
}
