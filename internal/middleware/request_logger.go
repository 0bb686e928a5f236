package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/logger"
)

// RequestLogger logs every request to the console and journals it to j.
// Requests to quietPaths, such as probes and scrapes, are only logged at
// debug level and never journaled.
func RequestLogger(j *Journal, quietPaths ...string) gin.HandlerFunc {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := requestEntry(c, time.Since(start))

		log := logger.ForRequest(entry.RequestID).With().
			Str("method", entry.Method).
			Str("path", c.Request.URL.Path).
			Int("status", entry.Status).
			Int64("latency_ms", entry.LatencyMS).
			Str("client_ip", entry.ClientIP).
			Logger()

		if _, ok := quiet[c.Request.URL.Path]; ok {
			log.Debug().Msg(entry.Message)
			return
		}

		switch entry.Level {
		case "error":
			log.Error().Msg(entry.Message)
		case "warn":
			log.Warn().Msg(entry.Message)
		default:
			log.Info().Msg(entry.Message)
		}
		j.Write(entry)
	}
}

func requestEntry(c *gin.Context, latency time.Duration) *model.LogEntry {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Kind:      model.KindRequest,
		Level:     levelForStatus(c.Writer.Status()),
		Message:   "HTTP request",
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Route:     route,
		Status:    c.Writer.Status(),
		LatencyMS: latency.Milliseconds(),
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	fillActor(c, entry)
	return entry
}

// fillActor copies the shopper identity of the request onto entry.
func fillActor(c *gin.Context, entry *model.LogEntry) {
	if id, ok := GetUserID(c); ok {
		entry.UserID = id.Hex()
	}
	if owner := GetCartOwner(c); owner.SessionID != "" {
		entry.CartID = owner.SessionID
	}
}

func levelForStatus(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "warn"
	default:
		return "info"
	}
}
