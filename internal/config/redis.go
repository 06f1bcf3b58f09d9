package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the configured Redis and pings it. It returns
// nil when caching is disabled or the server is unreachable; callers then
// run without a cache.
func NewRedisClient(cfg RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
