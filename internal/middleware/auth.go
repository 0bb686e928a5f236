package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth guards the API with static keys when auth is enabled but accounts
// are unavailable. The key is read from X-API-Key, then from the api_key query
// parameter. An empty key set disables the check.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	digests := make([][sha256.Size]byte, 0, len(validKeys))
	for key, ok := range validKeys {
		if ok && key != "" {
			digests = append(digests, sha256.Sum256([]byte(key)))
		}
	}

	return func(c *gin.Context) {
		if len(digests) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		if key == "" {
			abortWith(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !knownKey(digests, key) {
			abortWith(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
			return
		}
		c.Next()
	}
}

// knownKey compares digests in constant time so response timing does not
// reveal how much of a key matched.
func knownKey(digests [][sha256.Size]byte, key string) bool {
	sum := sha256.Sum256([]byte(key))
	found := 0
	for i := range digests {
		found |= subtle.ConstantTimeCompare(digests[i][:], sum[:])
	}
	return found == 1
}
