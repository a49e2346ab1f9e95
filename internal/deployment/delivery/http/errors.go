package http

import (
	"net/http"

	"skylift/internal/deployment"
	"skylift/internal/project"
	pkgErrors "skylift/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case deployment.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "deployment not found")
	case deployment.ErrNoDeployments:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project has no deployments")
	case deployment.ErrEmptyArchive:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "source archive is empty")
	case deployment.ErrStoreArchive:
		return pkgErrors.NewHTTPError(http.StatusInsufficientStorage, "failed to store source archive")
	case project.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	case project.ErrForbidden:
		return pkgErrors.NewHTTPError(http.StatusForbidden, "project does not belong to caller")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
