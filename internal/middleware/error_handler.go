package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorHandler logs the errors handlers attached with c.Error. When a
// handler gave up without answering, it answers for it with a status derived
// from the last error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := c.Writer.Status()
		written := c.Writer.Written()
		key := i18n.ErrKeyInternalError
		if !written {
			status, key = statusForError(err)
		}

		log := logger.ForRequest(GetRequestID(c))
		event := log.Error()
		if status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int("errors", len(c.Errors)).
			Msg("Request error")

		if written {
			return
		}
		abortWith(c, status, key)
	}
}

// statusForError tells a store outage apart from a bug.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	case errors.Is(err, circuitbreaker.ErrCircuitOpen), mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
