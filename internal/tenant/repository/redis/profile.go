package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/tenant/repository"
	pkgRedis "dealer-report-srv/pkg/redis"
)

const Prefix = "tenant:profile:"

func key(userID string) string {
	return fmt.Sprintf("%s%s", Prefix, userID)
}

func (r *implCacheRepository) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	data, err := r.redis.Get(ctx, key(userID))
	if errors.Is(err, pkgRedis.ErrNil) {
		return model.Profile{}, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "tenant.repository.redis.GetProfile: %v", err)
		return model.Profile{}, err
	}

	var p model.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		r.l.Errorf(ctx, "tenant.repository.redis.GetProfile: unmarshal error: %v", err)
		return model.Profile{}, err
	}
	return p, nil
}

func (r *implCacheRepository) SaveProfile(ctx context.Context, p model.Profile, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, key(p.UserID), data, ttl); err != nil {
		r.l.Errorf(ctx, "tenant.repository.redis.SaveProfile: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) DeleteProfile(ctx context.Context, userID string) error {
	if err := r.redis.Delete(ctx, key(userID)); err != nil {
		r.l.Errorf(ctx, "tenant.repository.redis.DeleteProfile: %v", err)
		return err
	}
	return nil
}
