package middleware

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/service/cache"
)

// MemoryIdempotencyStore keeps replays in process memory. Replays are lost
// on restart and are not shared between instances; use a Redis backed store
// when running more than one.
type MemoryIdempotencyStore struct {
	cache *cache.TTLCache[string, []byte]
}

// NewMemoryIdempotencyStore creates a store holding up to capacity replays
// for ttl each. The ttl passed to Set is ignored.
func NewMemoryIdempotencyStore(capacity int, ttl time.Duration) *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{
		cache: cache.NewTTLCache[string, []byte]("idempotency", capacity, ttl),
	}
}

// Get returns the replay stored under key.
func (s *MemoryIdempotencyStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := s.cache.Get(key)
	return data, ok, nil
}

// Set stores a replay under key.
func (s *MemoryIdempotencyStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.cache.Set(key, value)
	return nil
}

// Stop ends the background expiry of the store.
func (s *MemoryIdempotencyStore) Stop() {
	s.cache.Stop()
}
