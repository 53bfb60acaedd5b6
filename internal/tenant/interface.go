package tenant

import (
	"context"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Resolve returns the actor's profile, served from cache when possible.
	Resolve(ctx context.Context, userID string) (model.Profile, error)
	Invalidate(ctx context.Context, userID string) error
}
