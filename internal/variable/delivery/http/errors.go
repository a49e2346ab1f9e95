package http

import (
	"net/http"

	"skylift/internal/project"
	"skylift/internal/variable"
	pkgErrors "skylift/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case variable.ErrReservedKey:
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "variable name is reserved by the platform")
	case variable.ErrInjectedKey:
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "variable is platform-injected; remove its plugin instead")
	case variable.ErrInvalidKey:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "variable name is invalid")
	case variable.ErrEmptyInput:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "no variables provided")
	case variable.ErrBadDotenv:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "could not parse dotenv content")
	case variable.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "variable not found")
	case project.ErrNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "project not found")
	case project.ErrForbidden:
		return pkgErrors.NewHTTPError(http.StatusForbidden, "project does not belong to caller")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
