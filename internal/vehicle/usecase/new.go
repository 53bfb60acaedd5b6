package usecase

import (
	"time"

	"dealer-report-srv/internal/vehicle"
	"dealer-report-srv/internal/vehicle/repository"
	"dealer-report-srv/pkg/log"
)

const DefaultCacheTTL = 24 * time.Hour

type implUseCase struct {
	decoder  repository.DecoderRepository
	cache    repository.CacheRepository
	l        log.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// New builds the VIN usecase. cache may be nil.
func New(decoder repository.DecoderRepository, cache repository.CacheRepository, l log.Logger, cacheTTL time.Duration) vehicle.UseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &implUseCase{
		decoder:  decoder,
		cache:    cache,
		l:        l,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}
