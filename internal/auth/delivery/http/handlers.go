package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
	"skylift/pkg/response"
)

// Register godoc
// @Summary     Create an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} response.Resp
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.Register(ctx, req.toRegisterInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserResp(u))
}

// Login godoc
// @Summary     Log in
// @Description Exchanges email+password for a session token the CLI
// @Description stores locally.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Email and password"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toLoginInput())
	if err != nil {
		// Keep credential failures quiet in the logs.
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(out))
}

// WhoAmI godoc
// @Summary     Current account
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/me [GET]
func (h *handler) WhoAmI(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	u, err := h.uc.WhoAmI(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.WhoAmI: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUserResp(u))
}

// CreateToken godoc
// @Summary     Mint a personal access token
// @Description The plaintext token is returned once; only its hash is kept.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body createTokenReq true "Token name"
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/tokens [POST]
func (h *handler) CreateToken(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateTokenReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CreateToken(ctx, sc, req.Name)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateToken: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateTokenResp(out))
}

// ListTokens godoc
// @Summary     List personal access tokens
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/tokens [GET]
func (h *handler) ListTokens(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	ts, err := h.uc.ListTokens(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTokens: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenListResp(ts))
}
