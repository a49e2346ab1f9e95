package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type setVariablesReq struct {
	Pairs  map[string]string `json:"pairs,omitempty"`
	Dotenv string            `json:"dotenv,omitempty"`
}

type setVariablesResp struct {
	Updated int `json:"updated"`
}

// SetVariables upserts discrete key=value pairs and returns how many
// variables were written.
func (c *Client) SetVariables(ctx context.Context, projectID string, pairs map[string]string) (int, error) {
	var out setVariablesResp
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%s/variables", projectID), setVariablesReq{Pairs: pairs}, &out)
	return out.Updated, err
}

// SetVariablesDotenv uploads raw dotenv content (`variables set --from-file`).
func (c *Client) SetVariablesDotenv(ctx context.Context, projectID string, dotenv []byte) (int, error) {
	var out setVariablesResp
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%s/variables", projectID), setVariablesReq{Dotenv: string(dotenv)}, &out)
	return out.Updated, err
}

// ListVariables returns the project's variables with secrets masked.
func (c *Client) ListVariables(ctx context.Context, projectID string) ([]Variable, error) {
	var out struct {
		Variables []Variable `json:"variables"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/variables", projectID), nil, &out)
	return out.Variables, err
}

// ExportVariables returns the unmasked resolved variable map, injected
// values included. Backs `skylift run`.
func (c *Client) ExportVariables(ctx context.Context, projectID string) (map[string]string, error) {
	var out struct {
		Variables map[string]string `json:"variables"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/variables/export", projectID), nil, &out)
	return out.Variables, err
}

// UnsetVariable removes a user variable.
func (c *Client) UnsetVariable(ctx context.Context, projectID, key string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%s/variables/%s", projectID, url.PathEscape(key)), nil, nil)
}
