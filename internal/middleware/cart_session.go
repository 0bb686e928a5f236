package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/service"
)

const (
	// CartIDHeader carries the guest cart session between requests.
	CartIDHeader = "X-Cart-ID"
	// CartOwnerKey is the context key for the resolved cart owner.
	CartOwnerKey ContextKey = "cart_owner"
)

// CartSession resolves whose cart a request works on.
//
// A valid bearer token makes the request an account request; an invalid or
// missing token falls back to the guest session. The guest session comes from
// the X-Cart-ID header and a new one is issued when it is missing or not a
// UUID. The session ID is always echoed back so clients can keep it, and it is
// kept on the owner of account requests so a guest cart can be merged later.
func CartSession(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CartIDHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
		}
		c.Header(CartIDHeader, sessionID)

		owner := model.CartOwner{SessionID: sessionID}
		if authService != nil {
			if token, ok := BearerToken(c); ok {
				if claims, err := authService.ValidateToken(c.Request.Context(), token); err == nil {
					owner.UserID = claims.UserID.Hex()
					setClaims(c, claims)
				}
			}
		}

		c.Set(string(CartOwnerKey), owner)
		c.Next()
	}
}

// GetCartOwner returns the owner resolved by CartSession.
func GetCartOwner(c *gin.Context) model.CartOwner {
	if v, exists := c.Get(string(CartOwnerKey)); exists {
		if owner, ok := v.(model.CartOwner); ok {
			return owner
		}
	}
	return model.CartOwner{}
}

// GuestOwner returns the guest session of the request, ignoring any login.
func GuestOwner(c *gin.Context) model.CartOwner {
	return model.CartOwner{SessionID: GetCartOwner(c).SessionID}
}
