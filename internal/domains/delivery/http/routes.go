package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	doms := rg.Group("/projects/:id/domains", mw.Auth(), mw.RateLimit())
	{
		doms.GET("", h.List)
		doms.POST("/generate", h.Generate)
		doms.POST("", h.AddCustom)
		doms.POST("/:hostname/verify", h.Verify)
	}
}
