package repository

import (
	"context"
	"time"

	"dealer-report-srv/internal/vehicle"
)

// DecoderRepository looks a VIN up in the upstream decoder and returns its
// variables keyed by name, e.g. "Make" or "Model Year".
//
//go:generate mockery --name DecoderRepository
type DecoderRepository interface {
	Decode(ctx context.Context, vin string) (map[string]string, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetDecoded(ctx context.Context, vin string) (vehicle.DecodedVehicle, error)
	SaveDecoded(ctx context.Context, vin string, v vehicle.DecodedVehicle, ttl time.Duration) error
}
