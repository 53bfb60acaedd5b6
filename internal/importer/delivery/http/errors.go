package http

import (
	"errors"
	"net/http"

	"dealer-report-srv/internal/importer"
	pkgErrors "dealer-report-srv/pkg/errors"
)

var (
	errWrongBody       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errUnauthorized    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unauthorized")
	errProfileNotFound = pkgErrors.NewHTTPError(http.StatusBadRequest, "User profile not found")
	errUnknownType     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown import type")
	errTooManyRows     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Too many rows in import")
)

func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, importer.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, importer.ErrProfileNotFound):
		return errProfileNotFound
	case errors.Is(err, importer.ErrUnknownType):
		return errUnknownType.WithMessage(err.Error())
	case errors.Is(err, importer.ErrTooManyRows):
		return errTooManyRows
	default:
		panic(err)
	}
}
