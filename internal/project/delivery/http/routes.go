package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	projects := rg.Group("/projects", mw.Auth(), mw.RateLimit())
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Detail)
		projects.GET("/:id/status", h.Status)
	}
}
