package notification

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrProfileNotFound    = errors.New("user profile not found")
	ErrUnsupportedChannel = errors.New("unsupported notification type")
)
