package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
	"skylift/pkg/response"
)

// Create godoc
// @Summary     Create a new project
// @Description Provisions an empty project owned by the caller.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Project data"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Router      /api/v1/projects [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProjectResp(output.Project))
}

// List godoc
// @Summary     List projects
// @Description Returns all projects owned by the caller.
// @Tags        Projects
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get project detail
// @Description Returns a single project by ID.
// @Tags        Projects
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProjectResp(output.Project))
}

// Status godoc
// @Summary     Project status
// @Description Aggregated view: active deployment, plugins and domains.
// @Tags        Projects
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id}/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	output, err := h.uc.Status(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatusResp(output))
}
