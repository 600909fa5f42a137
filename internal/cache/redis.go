package cache

import (
	"context"
	"errors"
	"time"

	"figmaproxy/internal/redis"

	"go.uber.org/zap"
)

// RedisBackend is the subset of the redis client the store needs.
type RedisBackend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// RedisStore backs the result cache with redis, delegating expiry to
// SET with TTL. Used when redis is configured; lets several instances
// share one cache the same way the rest of the stack shares redis.
type RedisStore struct {
	client RedisBackend
	logger *zap.Logger
}

func NewRedisStore(client RedisBackend, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := s.client.Get(ctx, key)
	if err != nil {
		// a plain miss is expected; anything else is redis trouble,
		// and the caller recomputes either way
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.logger.Warn("redis cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return []byte(val), true
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn("redis cache write failed", zap.String("key", key), zap.Error(err))
	}
}
