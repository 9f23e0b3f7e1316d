package adapter

import (
	"context"
	"time"

	"mindflow/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCounterAdapter implements the domain.CounterStore interface using a Redis client.
type RedisCounterAdapter struct {
	client redis.Cmdable
}

// NewRedisCounterAdapter creates a new instance of RedisCounterAdapter.
// It expects a connected Redis client.
func NewRedisCounterAdapter(client redis.Cmdable) domain.CounterStore {
	return &RedisCounterAdapter{client: client}
}

// Incr implements CounterStore.Incr
func (r *RedisCounterAdapter) Incr(ctx context.Context, key string) (int64, error) {
	return r.client.Incr(ctx, key).Result()
}

// Expire implements CounterStore.Expire
func (r *RedisCounterAdapter) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.client.Expire(ctx, key, ttl).Err()
}

// TTL implements CounterStore.TTL
func (r *RedisCounterAdapter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}
