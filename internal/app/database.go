// Package app provides database initialization and setup.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	Mongo        *repository.MongoDB
	Redis        *redis.Client
	ProductRepo  repository.ProductRepositoryInterface
	CategoryRepo repository.CategoryRepositoryInterface
	OrderRepo    repository.OrderRepositoryInterface
	WishlistRepo repository.WishlistRepositoryInterface
	PricingRepo  repository.PricingSettingsRepositoryInterface
	AccountCarts repository.CartStoreInterface
	GuestCarts   repository.CartStoreInterface
	// Idempotency is set when Redis is available.
	Idempotency  *repository.RedisIdempotencyStore
	ActivityRepo repository.ActivityRepositoryInterface
	// CircuitBreakers is keyed by the name reported on the health endpoint.
	CircuitBreakers map[string]*circuitbreaker.CircuitBreaker
	UserRepo        repository.UserRepositoryInterface
	AccessRepo      repository.AccessRepositoryInterface
	TokenRepo       repository.TokenRepositoryInterface
}

// Close releases the database connections.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if d.Mongo != nil {
		if err := d.Mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}

// InitializeDatabase initializes MongoDB and Redis connections and creates the
// repositories. Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.Config) *DatabaseComponents {
	if !cfg.Database.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.Database.URI, cfg.Database.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	if err := db.SetActivityRetention(context.Background(), cfg.Database.ActivityRetention); err != nil {
		log.Warn().Err(err).Dur("retention", cfg.Database.ActivityRetention).Msg("Failed to set activity retention")
	}

	breakers := make(map[string]*circuitbreaker.CircuitBreaker)
	newBreaker := func(name string) *circuitbreaker.CircuitBreaker {
		cb := newCircuitBreaker(cfg.Database, name)
		breakers[name] = cb
		return cb
	}

	// Initialize repositories
	productRepo := repository.NewProductRepositoryWithCircuitBreaker(
		repository.NewProductRepository(db), newBreaker("mongodb_products"))
	pricingRepo := repository.NewPricingSettingsRepositoryWithCircuitBreaker(
		repository.NewPricingSettingsRepository(db), newBreaker("mongodb_pricing"))
	accountCarts := repository.NewCartStoreWithCircuitBreaker(
		repository.NewCartRepository(db), newBreaker("mongodb_carts"))

	components := &DatabaseComponents{
		Mongo:        db,
		ProductRepo:  productRepo,
		CategoryRepo: repository.NewCategoryRepository(db),
		OrderRepo:    repository.NewOrderRepository(db),
		WishlistRepo: repository.NewWishlistRepository(db),
		PricingRepo:  pricingRepo,
		AccountCarts: accountCarts,
		GuestCarts:   accountCarts,
		ActivityRepo: repository.NewActivityRepositoryWithCircuitBreaker(
			repository.NewActivityRepository(db), newBreaker("mongodb_activity")),
		CircuitBreakers: breakers,
		UserRepo:        repository.NewUserRepository(db),
		AccessRepo:      repository.NewAccessRepository(db),
		TokenRepo:       repository.NewTokenRepository(db),
	}

	if client := initializeRedis(cfg.Redis); client != nil {
		components.Redis = client
		components.GuestCarts = repository.NewCartStoreWithCircuitBreaker(
			repository.NewRedisCartStore(client, cfg.Redis.CartTTL), newBreaker("redis_guest_carts"))
		components.Idempotency = repository.NewRedisIdempotencyStore(client)
	}

	// Store the configured pricing as the first active settings document
	defaults := pricingFromConfig(cfg.Pricing)
	if err := initializeDefaultPricing(pricingRepo, defaults); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default pricing settings")
	}

	if err := seedAccessControl(components.AccessRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed roles and permissions")
	}

	return components
}

// initializeRedis connects the guest cart and idempotency stores. Returns nil
// when Redis is disabled or unreachable, in which case guest carts live in
// MongoDB and idempotent replays in process memory.
func initializeRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("addr", cfg.Addr).Msg("Failed to connect to Redis - guest carts stored in MongoDB")
		_ = client.Close()
		return nil
	}

	log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return client
}

// newCircuitBreaker builds a breaker that reports its state to Prometheus.
// Lookups that find nothing and rejected stock reservations are answers from a
// healthy database and do not count as failures.
func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
		IsSuccessful: isBackendHealthy,
	})
}

func isBackendHealthy(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) ||
		errors.Is(err, repository.ErrInsufficientStock) ||
		errors.Is(err, redis.Nil) ||
		mongo.IsDuplicateKeyError(err)
}

// initializeDefaultPricing stores defaults as the active pricing settings if
// none exist.
func initializeDefaultPricing(repo repository.PricingSettingsRepositoryInterface, defaults cart.Pricing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		if _, err := repo.Create(ctx, defaults, "system"); err != nil {
			return err
		}
		log.Info().
			Float64("tax_rate", defaults.TaxRate).
			Float64("flat_shipping_cost", defaults.FlatShippingCost).
			Float64("free_shipping_threshold", defaults.FreeShippingThreshold).
			Msg("Created default pricing settings")
	}

	return nil
}
