package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GenerateDomain mints (or returns the existing) generated domain.
func (c *Client) GenerateDomain(ctx context.Context, projectID string) (Domain, error) {
	var out Domain
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/domains/generate", projectID), nil, &out)
	return out, err
}

// AddDomain attaches a custom hostname and returns the TXT challenge
// the owner has to publish before verification.
func (c *Client) AddDomain(ctx context.Context, projectID, hostname string) (AddDomainResult, error) {
	var out AddDomainResult
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/domains", projectID), map[string]string{"hostname": hostname}, &out)
	return out, err
}

// VerifyDomain re-checks the TXT challenge for a pending custom domain.
func (c *Client) VerifyDomain(ctx context.Context, projectID, hostname string) (Domain, error) {
	var out Domain
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%s/domains/%s/verify", projectID, url.PathEscape(hostname)), nil, &out)
	return out, err
}

// ListDomains lists the project's domains, generated first.
func (c *Client) ListDomains(ctx context.Context, projectID string) ([]Domain, error) {
	var out []Domain
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%s/domains", projectID), nil, &out)
	return out, err
}
