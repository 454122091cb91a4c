package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/product-catalog/pkg/cache"
)

// RedisStore is a Store backed by Redis, for deployments with more than one
// API process. Window state lives in a counter key whose TTL is set on the
// first increment, so all processes observe the same budget.
type RedisStore struct {
	client *cache.RedisClient
}

// NewRedisStore returns a Store backed by the given RedisClient.
func NewRedisStore(r *cache.RedisClient) *RedisStore {
	return &RedisStore{client: r}
}

// Incr implements Store. INCR and the expiry are pipelined; ExpireNX only
// arms the TTL on the window's first request so later increments do not
// extend it.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	rdb := s.client.Client()

	pipe := rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	count := int(incr.Val())
	remaining := ttl.Val()
	if remaining < 0 {
		// Key has no TTL (e.g. pre-existing counter); treat as a fresh window.
		if err := rdb.Expire(ctx, key, window).Err(); err != nil && err != redis.Nil {
			return 0, time.Time{}, err
		}
		remaining = window
	}
	return count, time.Now().Add(remaining), nil
}
