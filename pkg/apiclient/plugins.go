package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// AddPlugin attaches a managed service (postgresql or redis) to the project.
func (c *Client) AddPlugin(ctx context.Context, projectID, kind string) (Plugin, error) {
	var out Plugin
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/plugins", projectID), map[string]string{"kind": kind}, &out)
	return out, err
}

// PluginConnection returns the plugin's connection URL (`skylift connect`).
func (c *Client) PluginConnection(ctx context.Context, projectID, kind string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/plugins/%s/connection", projectID, kind), nil, &out)
	return out.URL, err
}
