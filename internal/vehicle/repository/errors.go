package repository

import "errors"

var (
	ErrCacheMiss    = errors.New("repository: cache miss")
	ErrUpstream     = errors.New("repository: decoder returned a non-success status")
	ErrNoResults    = errors.New("repository: decoder returned no results")
	ErrInvalidReply = errors.New("repository: decoder reply is not valid json")
)
