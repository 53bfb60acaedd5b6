package usecase

import (
	"time"

	"dealer-report-srv/internal/tenant"
	"dealer-report-srv/internal/tenant/repository"
	"dealer-report-srv/pkg/log"
)

const defaultCacheTTL = 5 * time.Minute

type implUseCase struct {
	repo     repository.PostgresRepository
	cache    repository.CacheRepository
	l        log.Logger
	cacheTTL time.Duration
}

// New creates the profile resolver. cache may be nil, in which case every call hits Postgres.
func New(repo repository.PostgresRepository, cache repository.CacheRepository, l log.Logger, cacheTTL time.Duration) tenant.UseCase {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &implUseCase{
		repo:     repo,
		cache:    cache,
		l:        l,
		cacheTTL: cacheTTL,
	}
}
