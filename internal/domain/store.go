package domain

import (
	"context"
	"time"
)

// CounterStore is the port for expiring counters shared between server instances.
// The Redis adapter implements it.
type CounterStore interface {
	// Incr atomically increments the counter at key, creating it at 1.
	Incr(ctx context.Context, key string) (int64, error)

	// Expire sets a time to live on key.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// TTL returns the remaining time to live of key, or a negative duration when the key
	// has none.
	TTL(ctx context.Context, key string) (time.Duration, error)
}
