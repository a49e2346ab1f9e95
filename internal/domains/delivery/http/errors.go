package http

import (
	"net/http"

	"skylift/internal/domains"
	"skylift/internal/project"
	pkgErrors "skylift/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case domains.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "domain not found")
	case domains.ErrAlreadyExists:
		return pkgErrors.NewHTTPError(http.StatusConflict, "hostname already attached")
	case domains.ErrInvalidHostname:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid hostname")
	case domains.ErrReservedZone:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "hostname inside the platform zone")
	case domains.ErrNotVerified:
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "TXT record not found or mismatched")
	case project.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	case project.ErrForbidden:
		return pkgErrors.NewHTTPError(http.StatusForbidden, "project does not belong to caller")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
