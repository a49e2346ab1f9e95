package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"skylift/internal/model"
	"skylift/pkg/response"
)

const scopeContextKey = "skylift.scope"

// Auth verifies the Bearer token and stores the resolved Scope in the
// request context. Requests without a valid token get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		token := header
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			token = strings.TrimSpace(header[7:])
		}

		// Personal access tokens carry the sk_ prefix; everything
		// else is treated as a session JWT.
		if strings.HasPrefix(token, "sk_") {
			if m.apiTokens == nil {
				response.Unauthorized(c)
				c.Abort()
				return
			}
			sc, err := m.apiTokens.VerifyAPIToken(c.Request.Context(), token)
			if err != nil {
				m.l.Warnf(c.Request.Context(), "middleware.Auth api token: %v", err)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			c.Set(scopeContextKey, sc)
			c.Next()
			return
		}

		payload, err := m.scopeManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth verify: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{UserID: payload.UserID, Email: payload.Email})
		c.Next()
	}
}

// GetScope returns the Scope stored by Auth. Zero value when absent.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
