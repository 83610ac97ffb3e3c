// Package redis creates the Redis client used by the caching decorators.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"stock_dashboard/internal/platform/config"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
// Callers treat a nil client as "run without cache".
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := cfg.Host + ":" + cfg.Port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
