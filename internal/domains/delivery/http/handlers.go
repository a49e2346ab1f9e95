package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
	"skylift/pkg/response"
)

// Generate godoc
// @Summary     Generate the platform subdomain
// @Description Mints "<slug>-<suffix>.up.skylift.app" for the project.
// @Description Safe to call repeatedly.
// @Tags        Domains
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/domains/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	out, err := h.uc.Generate(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDomainResp(out.Domain))
}

// AddCustom godoc
// @Summary     Attach a custom domain
// @Description The domain stays pending until its verification TXT record
// @Description is visible in DNS.
// @Tags        Domains
// @Accept      json
// @Produce     json
// @Param       id   path string true "Project ID"
// @Param       body body addCustomReq true "Hostname"
// @Success     200 {object} response.Resp
// @Failure     409 {object} response.Resp "Conflict - hostname already attached"
// @Router      /api/v1/projects/{id}/domains [POST]
func (h *handler) AddCustom(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processAddCustomReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.AddCustom(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "uc.AddCustom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddCustomResp(out))
}

// Verify godoc
// @Summary     Verify a custom domain
// @Description Looks up the verification TXT record and activates the
// @Description domain on match.
// @Tags        Domains
// @Produce     json
// @Param       id       path string true "Project ID"
// @Param       hostname path string true "Hostname"
// @Success     200 {object} response.Resp
// @Failure     422 {object} response.Resp "TXT record missing or mismatched"
// @Router      /api/v1/projects/{id}/domains/{hostname}/verify [POST]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	d, err := h.uc.Verify(ctx, sc, c.Param("id"), c.Param("hostname"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Verify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDomainResp(d))
}

// List godoc
// @Summary     List project domains
// @Tags        Domains
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/domains [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	ds, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(ds))
}
