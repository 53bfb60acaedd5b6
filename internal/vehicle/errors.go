package vehicle

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidVINLength = errors.New("vin must be 17 characters long")
	ErrInvalidVINFormat = errors.New("invalid vin format")
	ErrDecodeFailed     = errors.New("vin decoder request failed")
	ErrNoData           = errors.New("no data found for vin")
)
