package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig holds Redis configuration. A zero PoolSize uses the go-redis default.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// redisImpl implements IRedis using go-redis. It backs the profile and VIN caches.
type redisImpl struct {
	client *goredis.Client
}
