package http

import (
	"net/http"

	"skylift/internal/auth"
	pkgErrors "skylift/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case auth.ErrInvalidCredentials, auth.ErrInvalidAPIToken:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case auth.ErrEmailTaken:
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already registered")
	case auth.ErrWeakPassword:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "password too short")
	case auth.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
