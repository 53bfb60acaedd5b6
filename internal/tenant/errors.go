package tenant

import "errors"

var (
	ErrProfileNotFound = errors.New("user profile not found")
	ErrUserIDRequired  = errors.New("user id is required")
)
