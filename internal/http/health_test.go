package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readiness struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Circuits map[string]string `json:"circuits"`
}

func ok(context.Context) error { return nil }

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	openBreaker := func() *circuitbreaker.CircuitBreaker {
		cb := circuitbreaker.New(circuitbreaker.Config{Name: "redis_guest_carts", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Hour})
		_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
		return cb
	}

	tests := []struct {
		name       string
		setup      func(h *HealthHandler)
		wantStatus int
		check      func(t *testing.T, r readiness)
	}{
		{
			name:       "nothing registered",
			setup:      func(*HealthHandler) {},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, r readiness) {
				assert.Equal(t, "ok", r.Status)
				assert.Empty(t, r.Checks)
			},
		},
		{
			name: "healthy dependencies and breakers",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(ok))
				h.RegisterCircuitBreaker("mongodb_carts", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				h.RegisterCircuitBreaker("ignored", nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, r readiness) {
				assert.Equal(t, map[string]string{"mongodb": "ok"}, r.Checks)
				assert.Equal(t, map[string]string{"mongodb_carts": "closed"}, r.Circuits)
			},
		},
		{
			name: "failing dependency",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("mongodb", HealthCheckFunc(ok))
				h.RegisterChecker("redis", HealthCheckFunc(func(context.Context) error { return errors.New("connection refused") }))
			},
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, r readiness) {
				assert.Equal(t, "degraded", r.Status)
				assert.Equal(t, "connection refused", r.Checks["redis"])
				assert.Equal(t, "ok", r.Checks["mongodb"])
			},
		},
		{
			name: "hanging dependency times out",
			setup: func(h *HealthHandler) {
				h.RegisterChecker("redis", HealthCheckFunc(func(ctx context.Context) error {
					_, hasDeadline := ctx.Deadline()
					if !hasDeadline {
						return errors.New("no deadline")
					}
					return context.DeadlineExceeded
				}))
			},
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, r readiness) {
				assert.Equal(t, context.DeadlineExceeded.Error(), r.Checks["redis"])
			},
		},
		{
			name:       "open breaker",
			setup:      func(h *HealthHandler) { h.RegisterCircuitBreaker("redis_guest_carts", openBreaker()) },
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, r readiness) {
				assert.Equal(t, "open", r.Circuits["redis_guest_carts"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler()
			tt.setup(handler)
			router := gin.New()
			handler.Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			require.Equal(t, tt.wantStatus, w.Code)
			var r readiness
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
			tt.check(t, r)
		})
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
