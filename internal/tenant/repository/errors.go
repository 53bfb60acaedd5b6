package repository

import "errors"

var (
	ErrProfileNotFound = errors.New("repository: profile not found")
	ErrCacheMiss       = errors.New("repository: cache miss")
)
