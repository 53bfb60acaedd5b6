package redis

import (
	"context"
	"fmt"
	"sync"

	"dealer-report-srv/config"
	"dealer-report-srv/pkg/redis"
)

var (
	client redis.IRedis
	mu     sync.Mutex
)

// Connect returns the process-wide Redis client used by the profile and VIN caches,
// creating it on first use. A failed attempt leaves nothing cached.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	c, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	client = c
	return client, nil
}

// Disconnect closes the Redis client.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
