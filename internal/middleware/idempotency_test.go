package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCartID = "3f1e2d4c-5b6a-4798-8a9b-0c1d2e3f4a5b"

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("redis: connection refused")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("redis: connection refused")
}

// orderRouter answers POST /api/orders with the statuses given, one per
// call, and counts how often the handler ran.
func orderRouter(store IdempotencyStore, calls *int32, statuses ...int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Store: store, TTL: time.Hour}))
	handler := func(c *gin.Context) {
		n := atomic.AddInt32(calls, 1)
		status := statuses[min(int(n), len(statuses))-1]
		c.Header(CartIDHeader, testCartID)
		c.JSON(status, gin.H{"order": n})
	}
	router.POST("/api/orders", handler)
	router.GET("/api/orders", handler)
	return router
}

func placeOrder(router *gin.Engine, method, key, cartID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/orders", strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	if cartID != "" {
		req.Header.Set(CartIDHeader, cartID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSuccessfulResponse(t *testing.T) {
	store := NewMemoryIdempotencyStore(10, time.Hour)
	defer store.Stop()
	var calls int32
	router := orderRouter(store, &calls, http.StatusCreated)

	first := placeOrder(router, http.MethodPost, "k-1", testCartID, `{"note":"gift"}`)
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Empty(t, first.Header().Get(IdempotencyReplayedHeader))

	second := placeOrder(router, http.MethodPost, "k-1", testCartID, `{"note":"gift"}`)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, testCartID, second.Header().Get(CartIDHeader))
	assert.Contains(t, second.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestIdempotency_Cases(t *testing.T) {
	const otherCart = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

	tests := []struct {
		name      string
		statuses  []int
		requests  [][4]string // method, key, cart, body
		wantCodes []int
		wantCalls int32
	}{
		{
			name:     "no key runs every time",
			statuses: []int{http.StatusCreated},
			requests: [][4]string{
				{http.MethodPost, "", testCartID, `{}`},
				{http.MethodPost, "", testCartID, `{}`},
			},
			wantCodes: []int{http.StatusCreated, http.StatusCreated},
			wantCalls: 2,
		},
		{
			name:     "GET is never replayed",
			statuses: []int{http.StatusOK},
			requests: [][4]string{
				{http.MethodGet, "k", testCartID, ""},
				{http.MethodGet, "k", testCartID, ""},
			},
			wantCodes: []int{http.StatusOK, http.StatusOK},
			wantCalls: 2,
		},
		{
			name:     "key reused with another body",
			statuses: []int{http.StatusCreated},
			requests: [][4]string{
				{http.MethodPost, "k", testCartID, `{"note":"a"}`},
				{http.MethodPost, "k", testCartID, `{"note":"b"}`},
			},
			wantCodes: []int{http.StatusCreated, http.StatusUnprocessableEntity},
			wantCalls: 1,
		},
		{
			name:     "same key from another cart is not replayed",
			statuses: []int{http.StatusCreated},
			requests: [][4]string{
				{http.MethodPost, "k", testCartID, `{}`},
				{http.MethodPost, "k", otherCart, `{}`},
			},
			wantCodes: []int{http.StatusCreated, http.StatusCreated},
			wantCalls: 2,
		},
		{
			name:     "failed response can be retried",
			statuses: []int{http.StatusConflict, http.StatusCreated},
			requests: [][4]string{
				{http.MethodPost, "k", testCartID, `{}`},
				{http.MethodPost, "k", testCartID, `{}`},
				{http.MethodPost, "k", testCartID, `{}`},
			},
			wantCodes: []int{http.StatusConflict, http.StatusCreated, http.StatusCreated},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryIdempotencyStore(10, time.Hour)
			defer store.Stop()
			var calls int32
			router := orderRouter(store, &calls, tt.statuses...)

			for i, r := range tt.requests {
				w := placeOrder(router, r[0], r[1], r[2], r[3])
				assert.Equal(t, tt.wantCodes[i], w.Code, "request %d", i)
			}
			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
		})
	}
}

func TestIdempotency_RetryWhileRunning(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewMemoryIdempotencyStore(10, time.Hour)
	defer store.Stop()

	entered := make(chan struct{})
	release := make(chan struct{})
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Store: store}))
	router.POST("/api/orders", func(c *gin.Context) {
		close(entered)
		<-release
		c.Status(http.StatusCreated)
	})

	var wg sync.WaitGroup
	wg.Add(1)
	var first *httptest.ResponseRecorder
	go func() {
		defer wg.Done()
		first = placeOrder(router, http.MethodPost, "k", testCartID, `{}`)
	}()

	<-entered
	retry := placeOrder(router, http.MethodPost, "k", testCartID, `{}`)
	close(release)
	wg.Wait()

	assert.Equal(t, http.StatusConflict, retry.Code)
	assert.Equal(t, http.StatusCreated, first.Code)
}

func TestIdempotency_StoreUnavailable(t *testing.T) {
	var calls int32
	router := orderRouter(failingStore{}, &calls, http.StatusCreated)

	for i := 0; i < 2; i++ {
		w := placeOrder(router, http.MethodPost, "k", testCartID, `{}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestIdempotency_NoStore(t *testing.T) {
	var calls int32
	router := orderRouter(nil, &calls, http.StatusCreated)

	placeOrder(router, http.MethodPost, "k", testCartID, `{}`)
	placeOrder(router, http.MethodPost, "k", testCartID, `{}`)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
