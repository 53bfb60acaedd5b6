package http

import (
	"errors"
	"net/http"

	"dealer-report-srv/internal/vehicle"
	pkgErrors "dealer-report-srv/pkg/errors"
)

var (
	errWrongBody        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errUnauthorized     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unauthorized")
	errInvalidVINLength = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid VIN. VIN must be 17 characters long.")
	errInvalidVINFormat = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid VIN format")
	errDecodeFailed     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Failed to decode VIN from NHTSA API")
	errNoData           = pkgErrors.NewHTTPError(http.StatusBadRequest, "No data found for this VIN")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, vehicle.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, vehicle.ErrInvalidVINLength):
		return errInvalidVINLength
	case errors.Is(err, vehicle.ErrInvalidVINFormat):
		return errInvalidVINFormat
	case errors.Is(err, vehicle.ErrDecodeFailed):
		return errDecodeFailed
	case errors.Is(err, vehicle.ErrNoData):
		return errNoData
	default:
		panic(err)
	}
}
