package http

import (
	"errors"
	"net/http"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/report"
	pkgErrors "dealer-report-srv/pkg/errors"
)

var (
	errWrongBody               = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errWrongQuery              = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	errUnauthorized            = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unauthorized")
	errProfileNotFound         = pkgErrors.NewHTTPError(http.StatusBadRequest, "User profile not found")
	errInsufficientPermissions = pkgErrors.NewHTTPError(http.StatusBadRequest, "Insufficient permissions to generate reports")
	errUnsupportedKind         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown report type")
	errUnsupportedFormat       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unsupported report format")
	errInvalidDateRange        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date range")
	errInvalidDelivery         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid delivery options")
	errDataAccess              = pkgErrors.NewHTTPError(http.StatusBadRequest, "Failed to generate report")
	errScheduleFailed          = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Failed to schedule report")
	errHistoryFailed           = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to load report history")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, report.ErrProfileNotFound):
		return errProfileNotFound
	case errors.Is(err, report.ErrInsufficientPermissions):
		return errInsufficientPermissions
	case errors.Is(err, report.ErrUnsupportedReportKind):
		return errUnsupportedKind.WithMessage(err.Error())
	case errors.Is(err, report.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, report.ErrInvalidDateRange):
		return errInvalidDateRange
	case errors.Is(err, report.ErrInvalidDelivery):
		return errInvalidDelivery
	case errors.Is(err, report.ErrDataAccess):
		return errDataAccess.WithMessage(err.Error())
	case errors.Is(err, report.ErrScheduleFailed):
		return errScheduleFailed
	case errors.Is(err, audit.ErrListFailed):
		return errHistoryFailed
	default:
		panic(err)
	}
}
