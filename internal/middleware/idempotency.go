package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/rs/zerolog/log"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from a stored replay.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a successful response is replayed.
	IdempotencyKeyTTL = 24 * time.Hour
)

// replayedHeaders are the response headers stored with a replay.
var replayedHeaders = []string{"Content-Type", "Location", CartIDHeader}

// IdempotencyStore keeps encoded replays between requests.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store IdempotencyStore
	TTL   time.Duration
}

// replay is a stored response together with the request it answered.
type replay struct {
	Fingerprint string            `json:"fingerprint"`
	Status      int               `json:"status"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        []byte            `json:"body"`
}

// Idempotency makes POST, PUT and PATCH requests carrying an Idempotency-Key
// safe to retry. The first successful response is stored and replayed for
// later requests with the same key from the same caller. A retry that arrives
// while the first attempt is running gets 409, and reusing a key for a
// different request gets 422. Failed responses are not stored so the client
// may retry them.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = IdempotencyKeyTTL
	}
	running := &inFlight{keys: make(map[string]struct{})}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || !replayableMethod(c.Request.Method) {
			c.Next()
			return
		}

		body, err := bufferBody(c.Request)
		if err != nil {
			abortWith(c, http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody)
			return
		}
		storeKey := callerScopedKey(c, key)
		fingerprint := requestFingerprint(c.Request, body)

		if !running.acquire(storeKey) {
			abortWith(c, http.StatusConflict, i18n.ErrKeyIdempotencyInFlight)
			return
		}
		defer running.release(storeKey)

		// The store is written after the handler, when a request timeout may
		// already have cancelled the request context.
		ctx := context.WithoutCancel(c.Request.Context())

		if prev, ok := loadReplay(ctx, cfg.Store, storeKey); ok {
			if prev.Fingerprint != fingerprint {
				abortWith(c, http.StatusUnprocessableEntity, i18n.ErrKeyIdempotencyKeyReused)
				return
			}
			for name, value := range prev.Headers {
				c.Header(name, value)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(prev.Status, prev.Headers["Content-Type"], prev.Body)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		stored := replay{
			Fingerprint: fingerprint,
			Status:      status,
			Headers:     make(map[string]string, len(replayedHeaders)),
			Body:        rec.body.Bytes(),
		}
		for _, name := range replayedHeaders {
			if value := rec.Header().Get(name); value != "" {
				stored.Headers[name] = value
			}
		}
		data, err := json.Marshal(stored)
		if err == nil {
			err = cfg.Store.Set(ctx, storeKey, data, cfg.TTL)
		}
		if err != nil {
			log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("Failed to store idempotent response")
		}
	}
}

func loadReplay(ctx context.Context, store IdempotencyStore, key string) (*replay, bool) {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("Idempotency store unavailable, processing request without replay")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var prev replay
	if err := json.Unmarshal(data, &prev); err != nil {
		log.Warn().Err(err).Msg("Discarding unreadable idempotent response")
		return nil, false
	}
	return &prev, true
}

func replayableMethod(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// callerScopedKey ties an Idempotency-Key to the credentials that sent it,
// so one shopper can never be served another shopper's replay.
func callerScopedKey(c *gin.Context, key string) string {
	h := sha256.New()
	for _, part := range []string{
		key,
		c.GetHeader("Authorization"),
		c.GetHeader("X-API-Key"),
		c.GetHeader(CartIDHeader),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	if c.GetHeader("Authorization") == "" && c.GetHeader(CartIDHeader) == "" {
		h.Write([]byte(c.ClientIP()))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func requestFingerprint(req *http.Request, body []byte) string {
	h := sha256.New()
	h.Write([]byte(req.Method))
	h.Write([]byte{0})
	h.Write([]byte(req.URL.Path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// inFlight tracks the keys whose first attempt is still running.
type inFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func (f *inFlight) acquire(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.keys[key]; busy {
		return false
	}
	f.keys[key] = struct{}{}
	return true
}

func (f *inFlight) release(key string) {
	f.mu.Lock()
	delete(f.keys, key)
	f.mu.Unlock()
}

// bodyRecorder copies the response body while it is written.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
