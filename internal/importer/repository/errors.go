package repository

import "errors"

var (
	ErrMissingTenant = errors.New("repository: tenant scope is required")
	ErrEmptyRecord   = errors.New("repository: record has no table or columns")
)
