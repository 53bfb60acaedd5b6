package repository

import (
	"context"
	"time"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetProfile(ctx context.Context, userID string) (model.Profile, error)
	SaveProfile(ctx context.Context, p model.Profile, ttl time.Duration) error
	DeleteProfile(ctx context.Context, userID string) error
}
