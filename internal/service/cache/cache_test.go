//go:build !integration

package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestCache[V any](capacity int, ttl time.Duration) (*TTLCache[string, V], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := newTTLCache[string, V]("test", capacity, ttl, clock.Now)
	return c, clock
}

// compile-time interface check
var _ CacheWithMetrics[string, []byte] = (*TTLCache[string, []byte])(nil)

func TestTTLCache_Get(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(c *TTLCache[string, string], clock *fakeClock)
		key           string
		expectedValue string
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setup: func(c *TTLCache[string, string], _ *fakeClock) {
				c.Set("sitemap", "<urlset/>")
			},
			key:           "sitemap",
			expectedValue: "<urlset/>",
			expectedFound: true,
		},
		{
			name:          "returns false when key not found",
			setup:         func(*TTLCache[string, string], *fakeClock) {},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setup: func(c *TTLCache[string, string], clock *fakeClock) {
				c.Set("sitemap", "<urlset/>")
				clock.Advance(2 * time.Minute)
			},
			key:           "sitemap",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestCache[string](10, time.Minute)
			defer c.Stop()
			tt.setup(c, clock)

			value, found := c.Get(tt.key)

			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache[int](2, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, foundA := c.Get("a")
	_, foundB := c.Get("b")
	_, foundC := c.Get("c")
	assert.True(t, foundA)
	assert.False(t, foundB)
	assert.True(t, foundC)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_SetRefreshesExistingKey(t *testing.T) {
	c, clock := newTestCache[int](2, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	clock.Advance(50 * time.Second)
	c.Set("a", 2)
	clock.Advance(50 * time.Second)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_GetOrLoad(t *testing.T) {
	c, _ := newTestCache[string](4, time.Minute)
	defer c.Stop()

	calls := 0
	load := func() (string, error) {
		calls++
		return "value", nil
	}

	v, err := c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, "value", v)

	v, err = c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)

	_, err = c.GetOrLoad("bad", func() (string, error) {
		return "", errors.New("db down")
	})
	assert.EqualError(t, err, "db down")
	_, found := c.Get("bad")
	assert.False(t, found)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	c, _ := newTestCache[int](4, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Invalidate("a")

	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	m := c.Metrics()
	assert.Equal(t, 0, m.Size)
	assert.Equal(t, int64(0), m.Hits)
	assert.Equal(t, int64(0), m.Misses)
}

func TestTTLCache_CleanupRemovesExpired(t *testing.T) {
	c, clock := newTestCache[int](4, time.Minute)
	defer c.Stop()

	c.Set("a", 1)
	clock.Advance(30 * time.Second)
	c.Set("b", 2)
	clock.Advance(45 * time.Second)

	c.cleanup()

	assert.Equal(t, 1, c.Metrics().Size)
	_, found := c.Get("b")
	assert.True(t, found)
}

func TestTTLCache_StopIsIdempotent(t *testing.T) {
	c := NewTTLCache[string, int]("test", 1, time.Second)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := NewTTLCache[int, int]("test", 64, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				k := (base*200 + j) % 100
				c.Set(k, j)
				_, _ = c.Get(k)
				if j%17 == 0 {
					c.Invalidate(k)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 64)
}
