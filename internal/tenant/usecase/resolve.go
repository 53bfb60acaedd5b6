package usecase

import (
	"context"
	"errors"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/tenant"
	"dealer-report-srv/internal/tenant/repository"
)

func (uc *implUseCase) Resolve(ctx context.Context, userID string) (model.Profile, error) {
	if userID == "" {
		return model.Profile{}, tenant.ErrUserIDRequired
	}

	if uc.cache != nil {
		p, err := uc.cache.GetProfile(ctx, userID)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "tenant.usecase.Resolve: Cache read failed, falling back to database: %v", err)
		}
	}

	p, err := uc.repo.GetProfile(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return model.Profile{}, tenant.ErrProfileNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "tenant.usecase.Resolve: Failed to load profile: %v", err)
		return model.Profile{}, err
	}
	// A profile without a dealership is treated as missing.
	if p.DealershipID == "" {
		return model.Profile{}, tenant.ErrProfileNotFound
	}

	if uc.cache != nil {
		if err := uc.cache.SaveProfile(ctx, p, uc.cacheTTL); err != nil {
			uc.l.Warnf(ctx, "tenant.usecase.Resolve: Failed to cache profile: %v", err)
		}
	}
	return p, nil
}

func (uc *implUseCase) Invalidate(ctx context.Context, userID string) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.DeleteProfile(ctx, userID)
}
