package http

import (
	"github.com/gin-gonic/gin"

	"skylift/internal/middleware"
	"skylift/pkg/response"
)

// Set godoc
// @Summary     Set variables
// @Description Upserts user variables. Accepts pairs or raw dotenv content.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Param       id   path string true "Project ID"
// @Param       body body setReq true "Variables"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/projects/{id}/variables [PUT]
func (h *handler) Set(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processSetReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	projectID := c.Param("id")
	var out setOutput
	if req.Dotenv != "" {
		o, err := h.uc.SetFromDotenv(ctx, sc, projectID, []byte(req.Dotenv))
		if err != nil {
			h.l.Errorf(ctx, "uc.SetFromDotenv: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		out.Updated = o.Updated
	} else {
		o, err := h.uc.Set(ctx, sc, req.toInput(projectID))
		if err != nil {
			h.l.Errorf(ctx, "uc.Set: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		out.Updated = o.Updated
	}

	response.OK(c, out)
}

// List godoc
// @Summary     List variables
// @Description Returns project variables with secret values masked.
// @Tags        Variables
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/variables [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	out, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Export godoc
// @Summary     Export variables
// @Description Returns the unmasked variable map for local `run` injection.
// @Tags        Variables
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/projects/{id}/variables/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	env, err := h.uc.Export(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, exportResp{Variables: env})
}

// Unset godoc
// @Summary     Unset a variable
// @Description Removes a user variable. Injected variables are refused.
// @Tags        Variables
// @Produce     json
// @Param       id  path string true "Project ID"
// @Param       key path string true "Variable name"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id}/variables/{key} [DELETE]
func (h *handler) Unset(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	err := h.uc.Unset(ctx, sc, unsetInput(c.Param("id"), c.Param("key")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Unset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
