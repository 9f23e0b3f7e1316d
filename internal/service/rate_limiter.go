package service

import (
	"context"
	"time"

	"mindflow/internal/domain"
	"mindflow/internal/kv"
	"mindflow/internal/logger"
	"mindflow/internal/metrics"

	"go.uber.org/zap"
)

// RateLimiter decides whether a client may perform an action in the current window.
type RateLimiter interface {
	// Allow returns a RATE_LIMITED DomainError once key exceeds the limit for scope.
	Allow(ctx context.Context, scope, key string) error
}

type fixedWindowLimiter struct {
	store  domain.CounterStore
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter counts requests per key in windows of the given length.
// Store errors let the request through.
func NewFixedWindowLimiter(store domain.CounterStore, limit int, window time.Duration) RateLimiter {
	return &fixedWindowLimiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

func (l *fixedWindowLimiter) Allow(ctx context.Context, scope, key string) error {
	redisKey := kv.GenerateKey("ratelimit", scope, key)

	count, err := l.store.Incr(ctx, redisKey)
	if err != nil {
		logger.Get().Warn("Rate limiter store unavailable, allowing request",
			zap.String("key", redisKey), zap.Error(err))
		return nil
	}
	if count == 1 {
		if err := l.store.Expire(ctx, redisKey, l.window); err != nil {
			logger.Get().Warn("Failed to set rate limit window", zap.String("key", redisKey), zap.Error(err))
		}
	}

	if count <= int64(l.limit) {
		return nil
	}

	metrics.RateLimited.WithLabelValues(scope).Inc()
	limitErr := domain.NewRateLimitedError(l.limit)

	// A key left without a TTL would block the client forever.
	ttl, err := l.store.TTL(ctx, redisKey)
	switch {
	case err != nil:
		logger.Get().Warn("Failed to read rate limit window", zap.String("key", redisKey), zap.Error(err))
	case ttl < 0:
		if err := l.store.Expire(ctx, redisKey, l.window); err != nil {
			logger.Get().Warn("Failed to set rate limit window", zap.String("key", redisKey), zap.Error(err))
		}
		limitErr.WithContext("retry_after_seconds", int(l.window.Seconds()))
	default:
		limitErr.WithContext("retry_after_seconds", int(ttl.Seconds()))
	}
	return limitErr
}

type noopLimiter struct{}

// NewNoopLimiter returns a RateLimiter that allows everything.
func NewNoopLimiter() RateLimiter { return noopLimiter{} }

func (noopLimiter) Allow(context.Context, string, string) error { return nil }
