package report

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized            = errors.New("unauthorized")
	ErrProfileNotFound         = errors.New("user profile not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions to generate reports")
	ErrUnsupportedReportKind   = errors.New("unsupported report type")
	ErrUnsupportedFormat       = errors.New("unsupported report format")
	ErrInvalidDateRange        = errors.New("invalid date range")
	ErrInvalidDelivery         = errors.New("invalid delivery options")
	ErrMissingTenantScope      = errors.New("report query requires a tenant scope")
	ErrDataAccess              = errors.New("report data access failed")
	ErrDelivery                = errors.New("report delivery failed")
	ErrAuditWrite              = errors.New("report audit write failed")
	ErrScheduleFailed          = errors.New("failed to schedule report")
)

// DataAccessError wraps a projection failure for one report kind.
type DataAccessError struct {
	Kind Kind
	Err  error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("Failed to generate %s report: %v", e.Kind, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}

// UnsupportedKindError carries the rejected kind for the client message.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("Unknown report type: %s", e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedReportKind
}
