package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. Paths under
// skipPaths are left alone, which matters for handlers such as the
// Prometheus exporter that compress on their own.
func Compression(skipPaths ...string) gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(skipPaths))
}
