package repository

import "errors"

var ErrMissingTenant = errors.New("repository: tenant scope is required")
