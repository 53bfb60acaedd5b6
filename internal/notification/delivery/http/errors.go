package http

import (
	"errors"
	"net/http"

	"dealer-report-srv/internal/notification"
	pkgErrors "dealer-report-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errUnauthorized       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unauthorized")
	errProfileNotFound    = pkgErrors.NewHTTPError(http.StatusBadRequest, "User profile not found")
	errUnsupportedChannel = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unsupported notification type")
)

func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, notification.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, notification.ErrProfileNotFound):
		return errProfileNotFound
	case errors.Is(err, notification.ErrUnsupportedChannel):
		return errUnsupportedChannel
	default:
		panic(err)
	}
}
