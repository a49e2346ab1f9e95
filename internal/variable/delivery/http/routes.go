package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Variables are nested under their project.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	vars := rg.Group("/projects/:id/variables", mw.Auth(), mw.RateLimit())
	{
		vars.GET("", h.List)
		vars.PUT("", h.Set)
		vars.GET("/export", h.Export)
		vars.DELETE("/:key", h.Unset)
	}
}
