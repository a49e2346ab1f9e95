package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	deps := rg.Group("/projects/:id/deployments", mw.Auth(), mw.RateLimit())
	{
		deps.POST("", h.Up)
		deps.GET("", h.List)
		deps.GET("/:deploymentID", h.Detail)
	}

	logs := rg.Group("/projects/:id/logs", mw.Auth(), mw.RateLimit())
	{
		logs.GET("", h.Logs)
		logs.GET("/stream", h.Stream)
	}
}
