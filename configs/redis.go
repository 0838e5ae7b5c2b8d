package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns a client for the rate limiter, or nil when no
// REDIS_ADDR is configured or the server is unreachable. A nil client
// disables rate limiting; nothing else depends on Redis.
func NewRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ redis unreachable at %s: %v (rate limiting disabled)", cfg.RedisAddr, err)
		return nil
	}
	return rdb
}
