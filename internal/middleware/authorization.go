package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/rs/zerolog/log"
)

// RequirePermission allows the request when one of the account's roles grants
// key, e.g. "orders:write". It must run after JWTAuth or CartSession.
func RequirePermission(access service.AccessService, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortWith(c, http.StatusUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}

		allowed, err := access.Allows(c.Request.Context(), claims.Roles, key)
		if err != nil {
			log.Error().Err(err).Str("permission", key).Str("request_id", GetRequestID(c)).Msg("Permission lookup failed")
			abortWith(c, http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable)
			return
		}
		if !allowed {
			abortWith(c, http.StatusForbidden, i18n.ErrKeyForbidden)
			return
		}

		c.Next()
	}
}
