// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/http"
	"github.com/guttosm/storefront-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// Journal is nil without a database. Close it after the server stops.
	Journal *middleware.Journal
	// RateLimiter is nil when RATE_LIMIT is not positive.
	RateLimiter *middleware.RateLimiter
	// memoryReplays is set when idempotent replays are kept in process.
	memoryReplays *middleware.MemoryIdempotencyStore
}

// memoryReplayCapacity bounds in-process idempotent replays.
const memoryReplayCapacity = 10000

// Stop ends the background work of the rate limiter and of an in-process
// idempotency store. It is safe to call more than once.
func (r *RouterComponents) Stop() {
	if r == nil {
		return
	}
	if r.RateLimiter != nil {
		r.RateLimiter.Stop()
	}
	if r.memoryReplays != nil {
		r.memoryReplays.Stop()
	}
}

// InitializeRouter initializes the health handler and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers and connections for health monitoring
	if dbComponents != nil {
		for name, cb := range dbComponents.CircuitBreakers {
			if cb != nil {
				healthHandler.RegisterCircuitBreaker(name, cb)
			}
		}
		if db := dbComponents.Mongo; db != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.HealthCheck))
		}
		if client := dbComponents.Redis; client != nil {
			healthHandler.RegisterChecker("redis", http.HealthCheckFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}))
		}
	}

	components := &RouterComponents{HealthHandler: healthHandler}
	routerCfg := http.RouterConfig{
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	if cfg.Server.RateLimit > 0 {
		components.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
		routerCfg.RateLimiter = components.RateLimiter
	}

	if dbComponents != nil && dbComponents.Idempotency != nil {
		routerCfg.IdempotencyStore = dbComponents.Idempotency
	} else {
		components.memoryReplays = middleware.NewMemoryIdempotencyStore(memoryReplayCapacity, middleware.IdempotencyKeyTTL)
		routerCfg.IdempotencyStore = components.memoryReplays
	}

	var journal *middleware.Journal
	if services != nil {
		if services.Activity != nil {
			journal = middleware.NewJournal(services.Activity, journalConfig(cfg.Logging))
		}
		routerCfg.Journal = journal
		routerCfg.CatalogService = services.Catalog
		routerCfg.CartService = services.Carts
		routerCfg.OrderService = services.Orders
		routerCfg.PricingService = services.Pricing
		routerCfg.WishlistService = services.Wishlist
		routerCfg.DashboardService = services.Dashboard
		routerCfg.SitemapService = services.Sitemap
		// Authentication is only enforced when enabled in config.
		if cfg.Auth.Enabled {
			routerCfg.AuthService = services.Auth
			routerCfg.AccessService = services.Access
			// The journal names shoppers, so it is only served behind auth.
			routerCfg.ActivityService = services.Activity
		}
	}

	components.Config = routerCfg
	components.Journal = journal
	return components
}

func journalConfig(cfg config.LoggingConfig) middleware.JournalConfig {
	jc := middleware.DefaultJournalConfig()
	if cfg.JournalBuffer > 0 {
		jc.BufferSize = cfg.JournalBuffer
	}
	if cfg.JournalBatch > 0 {
		jc.BatchSize = cfg.JournalBatch
	}
	if cfg.JournalFlush > 0 {
		jc.FlushInterval = cfg.JournalFlush
	}
	return jc
}
