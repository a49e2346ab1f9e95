package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"skylift/internal/deployment"
	"skylift/internal/middleware"
	"skylift/pkg/response"
)

// Up godoc
// @Summary     Deploy a source archive
// @Description Accepts a gzipped tar of the project directory (multipart
// @Description field "archive" or raw body) and enqueues a deployment.
// @Tags        Deployments
// @Accept      multipart/form-data
// @Produce     json
// @Param       id      path     string true "Project ID"
// @Param       archive formData file   true "Source archive (tar.gz)"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/deployments [POST]
func (h *handler) Up(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	archive, closeFn, err := h.processUpReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer closeFn()

	out, err := h.uc.Up(ctx, sc, deployment.UpInput{
		ProjectID: c.Param("id"),
		Archive:   archive,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Up: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeploymentResp(out.Deployment))
}

// List godoc
// @Summary     List deployments
// @Tags        Deployments
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/deployments [GET]
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

// Detail godoc
// @Summary     Deployment detail
// @Tags        Deployments
// @Produce     json
// @Param       id           path string true "Project ID"
// @Param       deploymentID path string true "Deployment ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/deployments/{deploymentID} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	d, err := h.uc.Detail(ctx, sc, c.Param("id"), c.Param("deploymentID"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeploymentResp(d))
}

// Logs godoc
// @Summary     Tail deployment logs
// @Description Returns the last N persisted lines. "deployment" defaults
// @Description to the project's latest deployment.
// @Tags        Deployments
// @Produce     json
// @Param       id         path  string true  "Project ID"
// @Param       deployment query string false "Deployment ID"
// @Param       tail       query int    false "Line count (default 100)"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/logs [GET]
func (h *handler) Logs(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	tail, _ := strconv.Atoi(c.Query("tail"))

	out, err := h.uc.Logs(ctx, sc, deployment.LogsInput{
		ProjectID:    c.Param("id"),
		DeploymentID: c.Query("deployment"),
		Tail:         tail,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Logs: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLogsResp(out))
}
