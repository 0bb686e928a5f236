package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "info"},
		{http.StatusMovedPermanently, "info"},
		{http.StatusConflict, "warn"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
		{http.StatusServiceUnavailable, "error"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, levelForStatus(tt.status))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := primitive.NewObjectID()

	tests := []struct {
		name      string
		path      string
		status    int
		login     bool
		wantEntry bool
		wantLevel string
	}{
		{name: "guest request", path: "/api/cart/items/abc", status: http.StatusOK, wantEntry: true, wantLevel: "info"},
		{name: "account request", path: "/api/cart/items/abc", status: http.StatusConflict, login: true, wantEntry: true, wantLevel: "warn"},
		{name: "server error", path: "/api/cart/items/abc", status: http.StatusServiceUnavailable, wantEntry: true, wantLevel: "error"},
		{name: "probe is not journaled", path: "/healthz", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &captureStore{}
			j := NewJournal(store, JournalConfig{BufferSize: 10, BatchSize: 10, FlushInterval: time.Hour, WriteTimeout: time.Second})

			router := gin.New()
			router.Use(RequestID(), RequestLogger(j, "/healthz"), CartSession(nil), func(c *gin.Context) {
				if tt.login {
					setClaims(c, &dto.Claims{UserID: userID})
				}
				c.Next()
			})
			router.GET("/api/cart/items/:productId", func(c *gin.Context) { c.Status(tt.status) })
			router.GET("/healthz", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(CartIDHeader, "3f0c2b4e-9a57-4d6c-8f3e-0d5b1a2c3e4f")
			router.ServeHTTP(w, req)
			j.Close()

			assert.Equal(t, tt.status, w.Code)
			entries := store.recorded()
			if !tt.wantEntry {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, model.KindRequest, entry.Kind)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, "/api/cart/items/:productId", entry.Route)
			assert.Equal(t, tt.status, entry.Status)
			assert.Equal(t, w.Header().Get(RequestIDHeader), entry.RequestID)
			assert.Equal(t, "3f0c2b4e-9a57-4d6c-8f3e-0d5b1a2c3e4f", entry.CartID)
			if tt.login {
				assert.Equal(t, userID.Hex(), entry.UserID)
			} else {
				assert.Empty(t, entry.UserID)
			}
		})
	}
}

func TestRequestLogger_WithoutJournal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
