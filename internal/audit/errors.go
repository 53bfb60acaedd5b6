package audit

import "errors"

var (
	ErrMissingTenant = errors.New("audit entry requires a tenant scope")
	ErrMissingActor  = errors.New("audit entry requires an actor")
	ErrWriteFailed   = errors.New("failed to write audit log")
	ErrListFailed    = errors.New("failed to list audit logs")
)
