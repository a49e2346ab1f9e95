package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	plugins := rg.Group("/projects/:id/plugins", mw.Auth(), mw.RateLimit())
	{
		plugins.POST("", h.Add)
		plugins.GET("/:kind/connection", h.Connection)
	}
}
