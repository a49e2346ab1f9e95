package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Register and Login are the only unauthenticated endpoints in the API.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		// No principal yet on register/login, so those are limited
		// by client IP.
		a.POST("/register", mw.RateLimit(), h.Register)
		a.POST("/login", mw.RateLimit(), h.Login)
		a.GET("/me", mw.Auth(), mw.RateLimit(), h.WhoAmI)
		a.POST("/tokens", mw.Auth(), mw.RateLimit(), h.CreateToken)
		a.GET("/tokens", mw.Auth(), mw.RateLimit(), h.ListTokens)
	}
}
