package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
	"skylift/internal/model"
	"skylift/pkg/response"
)

// Add godoc
// @Summary     Attach a plugin
// @Description Provisions a managed postgresql or redis instance and injects
// @Description its connection string as DATABASE_URL / REDIS_URL.
// @Tags        Plugins
// @Accept      json
// @Produce     json
// @Param       id   path string true "Project ID"
// @Param       body body addReq true "Plugin kind"
// @Success     200 {object} response.Resp
// @Failure     409 {object} response.Resp "Conflict - plugin already attached"
// @Router      /api/v1/projects/{id}/plugins [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Add(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPluginResp(out.Plugin))
}

// Connection godoc
// @Summary     Plugin connection URL
// @Description Returns the unmasked DSN for `skylift connect`.
// @Tags        Plugins
// @Produce     json
// @Param       id   path string true "Project ID"
// @Param       kind path string true "Plugin kind (postgresql|redis)"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id}/plugins/{kind}/connection [GET]
func (h *handler) Connection(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	dsn, err := h.uc.ConnectionURL(ctx, sc, c.Param("id"), model.PluginKind(c.Param("kind")))
	if err != nil {
		h.l.Errorf(ctx, "uc.ConnectionURL: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, connectionResp{URL: dsn})
}
