package repository

import "errors"

var (
	ErrUnknownProjection = errors.New("repository: no projection for report kind")
)
