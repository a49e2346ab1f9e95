package http

import (
	"net/http"

	"skylift/internal/project"
	pkgErrors "skylift/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case project.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	case project.ErrForbidden:
		return pkgErrors.NewHTTPError(http.StatusForbidden, "project does not belong to caller")
	case project.ErrDuplicateName:
		return pkgErrors.NewHTTPError(http.StatusConflict, "project name already exists")
	case project.ErrInvalidName:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "project name is invalid")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
