package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/mocks"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWTAuth(t *testing.T) {
	claims := &dto.Claims{
		UserID: primitive.NewObjectID(),
		Email:  "ana@example.com",
		Name:   "Ana",
		Roles:  []string{"role-staff"},
	}

	tests := []struct {
		name       string
		authHeader string
		setupMocks func(*mocks.MockAuthService)
		wantStatus int
		wantError  string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "good").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantError:  dto.ErrCodeUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic Z29vZA==",
			wantStatus: http.StatusUnauthorized,
			wantError:  dto.ErrCodeUnauthorized,
		},
		{
			name:       "empty bearer",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantError:  dto.ErrCodeUnauthorized,
		},
		{
			name:       "rejected token",
			authHeader: "Bearer expired",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "expired").Return(nil, service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  dto.ErrCodeUnauthorized,
		},
		{
			name:       "revoked token",
			authHeader: "Bearer revoked",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "revoked").Return(nil, service.ErrTokenRevoked)
			},
			wantStatus: http.StatusUnauthorized,
			wantError:  dto.ErrCodeUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			authService := mocks.NewMockAuthService(t)
			if tt.setupMocks != nil {
				tt.setupMocks(authService)
			}

			var gotID primitive.ObjectID
			var gotClaims *dto.Claims
			router := gin.New()
			router.Use(RequestID(), JWTAuth(authService))
			router.GET("/account", func(c *gin.Context) {
				gotID, _ = GetUserID(c)
				gotClaims, _ = GetClaims(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/account", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Contains(t, w.Body.String(), tt.wantError)
				assert.Nil(t, gotClaims)
				return
			}
			assert.Equal(t, claims.UserID, gotID)
			assert.Same(t, claims, gotClaims)
		})
	}
}

func TestGetUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not authenticated", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		_, ok := GetUserID(c)
		assert.False(t, ok)
		_, ok = GetClaims(c)
		assert.False(t, ok)
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(string(UserIDKey), primitive.NilObjectID)
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("claims set all keys", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		claims := &dto.Claims{UserID: primitive.NewObjectID(), Email: "ana@example.com", Roles: []string{"r1"}}
		setClaims(c, claims)

		id, ok := GetUserID(c)
		require.True(t, ok)
		assert.Equal(t, claims.UserID, id)
		assert.Equal(t, "ana@example.com", c.GetString(string(UserEmailKey)))
		assert.Equal(t, []string{"r1"}, c.GetStringSlice(string(UserRolesKey)))
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"Bearer ", "", false},
		{"bearer abc", "", false},
		{"", "", false},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.Header.Set("Authorization", tt.header)

			token, ok := BearerToken(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, token)
		})
	}
}
