package http

import (
	"github.com/gin-gonic/gin"
)

// processAddCustomReq binds and validates the custom domain request body.
func (h *handler) processAddCustomReq(c *gin.Context) (addCustomReq, error) {
	var req addCustomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
