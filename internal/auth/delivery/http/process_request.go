package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCredentialsReq(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateTokenReq(c *gin.Context) (createTokenReq, error) {
	var req createTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
