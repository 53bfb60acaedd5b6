package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dealer-report-srv/internal/vehicle"
	"dealer-report-srv/internal/vehicle/repository"
	pkgRedis "dealer-report-srv/pkg/redis"
)

const Prefix = "vin:decoded:"

func key(vin string) string {
	return Prefix + vin
}

func (r *implCacheRepository) GetDecoded(ctx context.Context, vin string) (vehicle.DecodedVehicle, error) {
	data, err := r.redis.Get(ctx, key(vin))
	if errors.Is(err, pkgRedis.ErrNil) {
		return vehicle.DecodedVehicle{}, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Errorf(ctx, "vehicle.repository.redis.GetDecoded: %v", err)
		return vehicle.DecodedVehicle{}, err
	}

	var v vehicle.DecodedVehicle
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		r.l.Errorf(ctx, "vehicle.repository.redis.GetDecoded: unmarshal error: %v", err)
		return vehicle.DecodedVehicle{}, err
	}
	return v, nil
}

func (r *implCacheRepository) SaveDecoded(ctx context.Context, vin string, v vehicle.DecodedVehicle, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, key(vin), data, ttl); err != nil {
		r.l.Errorf(ctx, "vehicle.repository.redis.SaveDecoded: %v", err)
		return err
	}
	return nil
}
