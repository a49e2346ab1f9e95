package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// processSetReq binds and validates the set variables request body.
func (h *handler) processSetReq(c *gin.Context) (setReq, error) {
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if len(req.Pairs) == 0 && req.Dotenv == "" {
		return req, errors.New("either pairs or dotenv is required")
	}
	return req, nil
}
