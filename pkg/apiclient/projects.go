package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

type createProjectReq struct {
	Name        string `json:"name"`
	Environment string `json:"environment,omitempty"`
}

// CreateProject creates a project. Environment defaults server-side to
// production when empty.
func (c *Client) CreateProject(ctx context.Context, name, environment string) (Project, error) {
	var out Project
	err := c.do(ctx, http.MethodPost, "/projects", createProjectReq{Name: name, Environment: environment}, &out)
	return out, err
}

// ListProjects lists the caller's projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out struct {
		Projects []Project `json:"projects"`
	}
	err := c.do(ctx, http.MethodGet, "/projects", nil, &out)
	return out.Projects, err
}

// GetProject fetches one project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (Project, error) {
	var out Project
	err := c.do(ctx, http.MethodGet, "/projects/"+projectID, nil, &out)
	return out, err
}

// ProjectStatus returns the project aggregate: deployments, plugins, domains.
func (c *Client) ProjectStatus(ctx context.Context, projectID string) (ProjectStatus, error) {
	var out ProjectStatus
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/status", projectID), nil, &out)
	return out, err
}
