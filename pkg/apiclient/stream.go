package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// FollowLogs opens the WebSocket log stream for a deployment. Lines
// arrive on the returned channel until the deployment reaches a
// terminal state (channel closed) or cancel is called. deploymentID
// empty follows the latest deployment.
func (c *Client) FollowLogs(ctx context.Context, projectID, deploymentID string) (<-chan LogLine, func(), error) {
	wsURL, err := c.streamURL(projectID, deploymentID)
	if err != nil {
		return nil, nil, err
	}

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, nil, &APIError{Status: resp.StatusCode, Message: "log stream refused"}
		}
		return nil, nil, fmt.Errorf("failed to dial log stream: %w", err)
	}

	lines := make(chan LogLine)
	done := make(chan struct{})

	go func() {
		defer close(lines)
		for {
			var ln LogLine
			if err := conn.ReadJSON(&ln); err != nil {
				return
			}
			select {
			case lines <- ln:
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			conn.Close()
		})
	}
	return lines, cancel, nil
}

func (c *Client) streamURL(projectID, deploymentID string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + apiPrefix + fmt.Sprintf("/projects/%s/logs/stream", projectID)
	if deploymentID != "" {
		u.RawQuery = url.Values{"deployment": {deploymentID}}.Encode()
	}
	return u.String(), nil
}
