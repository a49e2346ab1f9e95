package http

import (
	"net/http"

	"skylift/internal/plugin"
	"skylift/internal/project"
	pkgErrors "skylift/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case plugin.ErrAlreadyExists:
		return pkgErrors.NewHTTPError(http.StatusConflict, "plugin of this kind already attached")
	case plugin.ErrUnsupportedKind:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported plugin kind")
	case plugin.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "plugin not found")
	case plugin.ErrProvisionFailed:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "plugin provisioning failed")
	case plugin.ErrNoCapacity:
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "no managed capacity available")
	case project.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	case project.ErrForbidden:
		return pkgErrors.NewHTTPError(http.StatusForbidden, "project does not belong to caller")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
