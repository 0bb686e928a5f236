package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
)

// Timeout puts a deadline of d on the request context. Store calls made
// with that context give up once it passes; when the handler then returns
// without having answered, the client gets 504.
//
// The handler runs on the request goroutine, so it must watch its context
// for the deadline to have any effect.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}
		abortWith(c, http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
	}
}
