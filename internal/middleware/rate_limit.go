package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
	"golang.org/x/time/rate"
)

const limiterShards = 16

// client is the token bucket of one caller.
type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*client
}

// RateLimiter gives every caller a token bucket holding up to limit requests,
// refilled evenly over window. Buckets are spread over shards to keep lock
// contention low and are evicted once idle.
type RateLimiter struct {
	shards   [limiterShards]limiterShard
	every    rate.Limit
	burst    int
	idle     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing limit requests per window per caller.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	rl := &RateLimiter{
		every:  rate.Every(window / time.Duration(limit)),
		burst:  limit,
		idle:   max(2*window, time.Minute),
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i].clients = make(map[string]*client)
	}

	go rl.evictLoop()
	return rl
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &rl.shards[h.Sum32()%limiterShards]
}

// take spends one token of key. When none is left it reports how long until
// the next one.
func (rl *RateLimiter) take(key string, now time.Time) (ok bool, remaining int, retryAfter time.Duration) {
	s := rl.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	c, exists := s.clients[key]
	if !exists {
		c = &client{bucket: rate.NewLimiter(rl.every, rl.burst)}
		s.clients[key] = c
	}
	c.lastSeen = now

	r := c.bucket.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, 0, delay
	}
	return true, int(math.Max(0, c.bucket.TokensAt(now))), 0
}

// RateLimit limits requests per client IP. Every request spends one token,
// signed in or not.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, remaining, retryAfter := rl.take("ip:"+c.ClientIP(), time.Now())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if ok {
			c.Next()
			return
		}

		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		abortWith(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
	}
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.evictIdle(now)
		case <-rl.stopCh:
			return
		}
	}
}

// evictIdle forgets callers not seen for the idle period; their bucket would
// be full again anyway.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		for key, c := range s.clients {
			if now.Sub(c.lastSeen) > rl.idle {
				delete(s.clients, key)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the eviction loop. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Clients returns the number of callers currently tracked.
func (rl *RateLimiter) Clients() int {
	n := 0
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		n += len(s.clients)
		s.mu.Unlock()
	}
	return n
}
