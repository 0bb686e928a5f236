package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/logger"
)

// Recovery turns a panicking handler into a 500 and logs the panic with its
// stack. http.ErrAbortHandler is re-raised so the server can drop the
// connection as intended.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}

			log := logger.ForRequest(GetRequestID(c))
			log.Error().
				Interface("panic", p).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")

			if c.Writer.Written() {
				c.Abort()
				return
			}
			abortWith(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}()
		c.Next()
	}
}
