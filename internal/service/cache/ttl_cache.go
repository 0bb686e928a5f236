package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/storefront-service/internal/metrics"
)

// TTLCache is a thread-safe LRU cache whose entries also expire after a
// fixed TTL. It implements CacheWithMetrics.
type TTLCache[K comparable, V any] struct {
	name      string
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[K]*entry[K, V]
	head      *entry[K, V]
	tail      *entry[K, V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
	clock     func() time.Time
}

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	prev      *entry[K, V]
	next      *entry[K, V]
}

// NewTTLCache creates a cache reported under name in the cache metrics.
// A background goroutine removes expired entries until Stop is called.
func NewTTLCache[K comparable, V any](name string, capacity int, ttl time.Duration) *TTLCache[K, V] {
	return newTTLCache[K, V](name, capacity, ttl, time.Now)
}

func newTTLCache[K comparable, V any](name string, capacity int, ttl time.Duration, clock func() time.Time) *TTLCache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &TTLCache[K, V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*entry[K, V], capacity),
		stopCh:   make(chan struct{}),
		clock:    clock,
	}
	metrics.UpdateCacheMetrics(name, 0, capacity)
	go c.startCleanup()
	return c
}

// Get returns the value for key if present and not expired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}
	if c.clock().After(e.expiresAt) {
		c.removeEntry(e)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "expired")
		return zero, false
	}

	c.moveToFront(e)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return e.value, true
}

// Set adds or replaces the value for key. The least recently used entry is
// evicted once the cache is over capacity.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.clock().Add(c.ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		metrics.RecordCacheOperation(c.name, "set", "success")
		return
	}

	e := &entry[K, V]{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = e
	c.addToFront(e)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
	}
	metrics.RecordCacheOperation(c.name, "set", "success")
	metrics.UpdateCacheMetrics(c.name, len(c.items), c.capacity)
}

// GetOrLoad returns the cached value for key, calling load and caching its
// result on a miss. Load errors are returned and nothing is cached.
func (c *TTLCache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Invalidate removes key from the cache.
func (c *TTLCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
		metrics.RecordCacheOperation(c.name, "invalidate", "success")
		metrics.UpdateCacheMetrics(c.name, len(c.items), c.capacity)
	}
}

// Clear removes every entry and resets the counters.
func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*entry[K, V], c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation(c.name, "clear", "success")
	metrics.UpdateCacheMetrics(c.name, 0, c.capacity)
}

// Stop ends the background cleanup. It is safe to call more than once.
func (c *TTLCache[K, V]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Metrics returns current cache performance metrics.
func (c *TTLCache[K, V]) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

func (c *TTLCache[K, V]) startCleanup() {
	interval := c.ttl
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *TTLCache[K, V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	for _, e := range c.items {
		if now.After(e.expiresAt) {
			c.removeEntry(e)
		}
	}
	metrics.UpdateCacheMetrics(c.name, len(c.items), c.capacity)
}

func (c *TTLCache[K, V]) removeEntry(e *entry[K, V]) {
	delete(c.items, e.key)
	c.unlink(e)
}

func (c *TTLCache[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *TTLCache[K, V]) addToFront(e *entry[K, V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *TTLCache[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
