package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCounterAdapter_Incr(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCounterAdapter(db)
	ctx := context.Background()
	key := "mindflow:ratelimit:assessment:10.0.0.1"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectIncr(key).SetVal(3)
		val, err := adapter.Incr(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectIncr(key).SetErr(redisErr)
		val, err := adapter.Incr(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Zero(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCounterAdapter_Expire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCounterAdapter(db)
	ctx := context.Background()
	key := "counter"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExpire(key, time.Minute).SetVal(true)
		assert.NoError(t, adapter.Expire(ctx, key, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectExpire(key, time.Minute).SetErr(redisErr)
		assert.ErrorIs(t, adapter.Expire(ctx, key, time.Minute), redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCounterAdapter_TTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCounterAdapter(db)
	ctx := context.Background()

	mock.ExpectTTL("counter").SetVal(42 * time.Second)
	ttl, err := adapter.TTL(ctx, "counter")
	assert.NoError(t, err)
	assert.Equal(t, 42*time.Second, ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}
