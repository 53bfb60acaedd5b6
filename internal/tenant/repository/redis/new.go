package redis

import (
	"dealer-report-srv/internal/tenant/repository"
	"dealer-report-srv/pkg/log"
	pkgRedis "dealer-report-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
