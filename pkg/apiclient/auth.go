package apiclient

import (
	"context"
	"net/http"
)

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, email, password string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/auth/register", credentialsReq{Email: email, Password: password}, &out)
	return out, err
}

// Login exchanges credentials for a session JWT.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", credentialsReq{Email: email, Password: password}, &out)
	return out, err
}

// WhoAmI returns the account behind the configured token.
func (c *Client) WhoAmI(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out)
	return out, err
}

// CreateToken mints a personal access token. The plaintext in the
// result is shown exactly once.
func (c *Client) CreateToken(ctx context.Context, name string) (CreateTokenResult, error) {
	var out CreateTokenResult
	err := c.do(ctx, http.MethodPost, "/auth/tokens", map[string]string{"name": name}, &out)
	return out, err
}

// ListTokens lists the account's personal access tokens.
func (c *Client) ListTokens(ctx context.Context) ([]APIToken, error) {
	var out []APIToken
	err := c.do(ctx, http.MethodGet, "/auth/tokens", nil, &out)
	return out, err
}
