package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "storefront:idempotency:"

// RedisIdempotencyStore shares stored replays of idempotent requests between
// service instances.
type RedisIdempotencyStore struct {
	client redisCmdable
}

// NewRedisIdempotencyStore creates a replay store on client.
func NewRedisIdempotencyStore(client redisCmdable) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

// Get returns the replay stored under key.
func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, idempotencyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load idempotent response: %w", err)
	}
	return data, true, nil
}

// Set stores a replay under key for ttl.
func (s *RedisIdempotencyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, idempotencyKeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("store idempotent response: %w", err)
	}
	return nil
}
