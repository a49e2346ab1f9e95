package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"skylift/internal/deployment"
	"skylift/internal/middleware"
	"skylift/pkg/response"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// CLI and dashboard connect from arbitrary origins; auth happens via
// the Bearer token, not the Origin header.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Stream godoc
// @Summary     Follow deployment logs
// @Description WebSocket endpoint streaming live log lines as JSON.
// @Tags        Deployments
// @Param       id         path  string true  "Project ID"
// @Param       deployment query string false "Deployment ID"
// @Success     101 {string} string "Switching Protocols"
// @Router      /api/v1/projects/{id}/logs/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	lines, cancel, err := h.uc.Follow(ctx, sc, deployment.LogsInput{
		ProjectID:    c.Param("id"),
		DeploymentID: c.Query("deployment"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Follow: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		cancel()
		h.l.Warnf(ctx, "logs stream upgrade: %v", err)
		return
	}

	done := make(chan struct{})

	// Reader: only there to notice the client going away.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		cancel()
		conn.Close()
	}()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case ln, ok := <-lines:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				// Deployment finished.
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "log stream ended"))
				return
			}
			if err := conn.WriteJSON(ln); err != nil {
				return
			}
		}
	}
}
