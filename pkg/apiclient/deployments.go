package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Up uploads a gzipped source archive and returns the queued deployment.
func (c *Client) Up(ctx context.Context, projectID string, archive io.Reader) (Deployment, error) {
	var out Deployment
	err := c.upload(ctx, fmt.Sprintf("/projects/%s/deployments", projectID), archive, "application/gzip", &out)
	return out, err
}

// ListDeployments lists the project's deployments, newest first.
func (c *Client) ListDeployments(ctx context.Context, projectID string) ([]Deployment, error) {
	var out []Deployment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/deployments", projectID), nil, &out)
	return out, err
}

// GetDeployment fetches one deployment.
func (c *Client) GetDeployment(ctx context.Context, projectID, deploymentID string) (Deployment, error) {
	var out Deployment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/deployments/%s", projectID, deploymentID), nil, &out)
	return out, err
}

// Logs fetches the persisted log tail. deploymentID empty means the
// latest deployment; tail <= 0 uses the server default.
func (c *Client) Logs(ctx context.Context, projectID, deploymentID string, tail int) (LogsResult, error) {
	q := url.Values{}
	if deploymentID != "" {
		q.Set("deployment", deploymentID)
	}
	if tail > 0 {
		q.Set("tail", strconv.Itoa(tail))
	}
	path := fmt.Sprintf("/projects/%s/logs", projectID)
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var out LogsResult
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}
