package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
//
// The router does not own RateLimiter or IdempotencyStore; whoever creates
// them stops them.
type RouterConfig struct {
	// RateLimiter limits every request per client IP. Nil disables limiting.
	RateLimiter *middleware.RateLimiter
	APIKeys     map[string]bool
	EnableAuth  bool
	// IdempotencyStore enables Idempotency-Key replays. Nil disables them.
	IdempotencyStore middleware.IdempotencyStore
	CORSOrigins      []string
	SwaggerUser      string
	SwaggerPass      string
	RequestTimeout   time.Duration
	Journal          *middleware.Journal
	ActivityService  service.ActivityService
	AuthService      service.AuthService
	AccessService    service.AccessService
	CatalogService   service.CatalogService
	CartService      service.CartService
	OrderService     service.OrderService
	PricingService   service.PricingSettingsService
	WishlistService  service.WishlistService
	DashboardService service.DashboardService
	SitemapService   service.SitemapService
}

// quietPaths are probed constantly and stay out of the request log.
var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

// NewRouter builds the storefront engine. Shopper routes are always served;
// account, wishlist and admin routes need an AuthService.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(cfg.Journal, quietPaths...),
		middleware.WithJournal(cfg.Journal),
		middleware.ErrorHandler(),
	)
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.RateLimit())
	}

	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.SitemapService != nil {
		NewSEOHandler(cfg.SitemapService).Register(router)
	}
	mountSwagger(router, cfg.SwaggerUser, cfg.SwaggerPass)

	api := router.Group("/api", apiMiddleware(&cfg)...)
	store := NewStoreRoutes(&cfg)
	if cfg.AuthService == nil {
		store.RegisterPublicRoutes(api)
		return router
	}

	auth := NewAuthRoutes(&cfg)
	auth.RegisterPublicRoutes(api)
	store.RegisterShopperRoutes(api, cfg.AuthService)

	protected := auth.ProtectedGroup(api)
	auth.RegisterProtectedRoutes(protected)
	store.RegisterProtectedRoutes(protected, &cfg)
	return router
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control",
			"Content-Type", "Content-Length", "X-Requested-With",
			"Authorization", "X-Refresh-Token", "X-API-Key",
			middleware.IdempotencyKeyHeader, middleware.RequestIDHeader, middleware.CartIDHeader,
		},
		ExposeHeaders: []string{
			middleware.RequestIDHeader, middleware.CartIDHeader, middleware.IdempotencyReplayedHeader,
			"Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining",
		},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
}

func mountSwagger(router *gin.Engine, user, pass string) {
	docs := router.Group("/swagger")
	if user != "" && pass != "" {
		docs.Use(gin.BasicAuth(gin.Accounts{user: pass}))
	}
	docs.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// apiMiddleware runs on every /api route, after the global stack.
func apiMiddleware(cfg *RouterConfig) []gin.HandlerFunc {
	var chain []gin.HandlerFunc
	if cfg.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.IdempotencyStore != nil {
		chain = append(chain, middleware.Idempotency(middleware.IdempotencyConfig{
			Store: cfg.IdempotencyStore,
			TTL:   middleware.IdempotencyKeyTTL,
		}))
	}
	// Without JWT auth a configured API key guards the whole API.
	if cfg.EnableAuth && cfg.AuthService == nil && len(cfg.APIKeys) > 0 {
		chain = append(chain, middleware.APIKeyAuth(cfg.APIKeys))
	}
	return chain
}
