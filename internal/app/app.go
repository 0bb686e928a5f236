// Package app wires configuration, stores, services and the HTTP router.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/http"
)

const closeTimeout = 5 * time.Second

// InitializeApp builds the storefront router. Without MongoDB only the probes
// and the configured pricing are served. The returned cleanup drains
// the activity journal, stops background work and closes the stores. Call it
// once the server has stopped.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	InitializeLogger(cfg.Logging)

	db := InitializeDatabase(cfg)
	services := InitializeServices(cfg, db)
	routing := InitializeRouter(services, db, cfg)

	cleanup := func() {
		// The journal flushes through the activity repository, so it goes first.
		routing.Journal.Close()
		routing.Stop()
		services.Stop()
		if db == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		db.Close(ctx)
	}
	return http.NewRouter(routing.HealthHandler, routing.Config), cleanup
}
