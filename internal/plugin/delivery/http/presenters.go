package http

import (
	"time"

	"skylift/internal/model"
	"skylift/internal/plugin"
)

// --- Request DTOs ---

type addReq struct {
	Kind string `json:"kind" binding:"required,oneof=postgresql redis"`
}

func (r addReq) toInput(projectID string) plugin.AddInput {
	return plugin.AddInput{ProjectID: projectID, Kind: model.PluginKind(r.Kind)}
}

// --- Response DTOs ---

type pluginResp struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Variable  string    `json:"variable"`
	CreatedAt time.Time `json:"created_at"`
}

type connectionResp struct {
	URL string `json:"url"`
}

func (h *handler) newPluginResp(p model.Plugin) pluginResp {
	return pluginResp{
		ID:        p.ID,
		Kind:      string(p.Kind),
		Status:    string(p.Status),
		Variable:  p.Kind.InjectedVariable(),
		CreatedAt: p.CreatedAt,
	}
}
