package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys set for authenticated requests.
const (
	UserIDKey     ContextKey = "user_id"
	UserEmailKey  ContextKey = "user_email"
	UserNameKey   ContextKey = "user_name"
	UserRolesKey  ContextKey = "user_roles"
	UserClaimsKey ContextKey = "user_claims"
)

// JWTAuth rejects requests without a valid bearer access token.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			key := i18n.ErrKeyTokenRequired
			if c.GetHeader("Authorization") != "" {
				key = i18n.ErrKeyInvalidToken
			}
			abortWith(c, http.StatusUnauthorized, key)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// GetClaims returns the claims of the authenticated account.
func GetClaims(c *gin.Context) (*dto.Claims, bool) {
	v, exists := c.Get(string(UserClaimsKey))
	if !exists {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok && claims != nil
}

// GetUserID returns the ID of the authenticated account.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get(string(UserIDKey))
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok && !id.IsZero()
}

func setClaims(c *gin.Context, claims *dto.Claims) {
	c.Set(string(UserIDKey), claims.UserID)
	c.Set(string(UserEmailKey), claims.Email)
	c.Set(string(UserNameKey), claims.Name)
	c.Set(string(UserRolesKey), claims.Roles)
	c.Set(string(UserClaimsKey), claims)
}

// BearerToken returns the token of an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	return token, found && token != ""
}

// abortWith ends the request with a translated error body.
func abortWith(c *gin.Context, status int, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c)))
}
