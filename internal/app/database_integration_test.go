//go:build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationConfig(uri, dbName string) config.Config {
	return config.Config{
		Database: config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   dbName,
			ActivityRetention:              30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Pricing: config.PricingConfig{
			TaxRate:               0.08,
			FlatShippingCost:      10,
			FreeShippingThreshold: 150,
		},
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Use shared container with unique database names for each subtest
	uri := testutil.MongoURI()

	t.Run("initialize with enabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(newIntegrationConfig(uri, testutil.DatabaseName(t)))
		require.NotNil(t, components)
		defer components.Close(ctx)

		assert.NotNil(t, components.Mongo)
		assert.NotNil(t, components.ProductRepo)
		assert.NotNil(t, components.CategoryRepo)
		assert.NotNil(t, components.OrderRepo)
		assert.NotNil(t, components.WishlistRepo)
		assert.NotNil(t, components.PricingRepo)
		assert.NotNil(t, components.AccountCarts)
		assert.NotNil(t, components.ActivityRepo)
		assert.NotNil(t, components.UserRepo)
		assert.NotNil(t, components.AccessRepo)
		assert.NotNil(t, components.TokenRepo)

		// Redis disabled: guest carts share the MongoDB store.
		assert.Nil(t, components.Redis)
		assert.Same(t, components.AccountCarts, components.GuestCarts)
	})

	t.Run("initialize with disabled database", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(config.Config{})
		assert.Nil(t, components)
	})

	t.Run("default pricing initialization", func(t *testing.T) {
		t.Parallel()
		cfg := newIntegrationConfig(uri, testutil.DatabaseName(t))
		cfg.Pricing.TaxRate = 0.21
		components := InitializeDatabase(cfg)
		require.NotNil(t, components)
		defer components.Close(ctx)

		active, err := components.PricingRepo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.InDelta(t, 0.21, active.TaxRate, 1e-9)
		assert.Equal(t, "system", active.CreatedBy)
	})

	t.Run("roles are seeded", func(t *testing.T) {
		t.Parallel()
		components := InitializeDatabase(newIntegrationConfig(uri, testutil.DatabaseName(t)))
		require.NotNil(t, components)
		defer components.Close(ctx)

		admin, err := components.AccessRepo.FindRoleByName(ctx, model.RoleAdmin)
		require.NoError(t, err)
		require.NotNil(t, admin)
		perms, err := components.AccessRepo.FindPermissionsByIDs(ctx, admin.Permissions)
		require.NoError(t, err)
		assert.Len(t, perms, len(storePermissions))

		customer, err := components.AccessRepo.FindRoleByName(ctx, model.RoleCustomer)
		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Empty(t, customer.Permissions)
	})

	t.Run("unreachable redis falls back to MongoDB", func(t *testing.T) {
		t.Parallel()
		cfg := newIntegrationConfig(uri, testutil.DatabaseName(t))
		cfg.Redis = config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1", CartTTL: time.Hour}
		components := InitializeDatabase(cfg)
		require.NotNil(t, components)
		defer components.Close(ctx)

		assert.Nil(t, components.Redis)
		assert.Same(t, components.AccountCarts, components.GuestCarts)
	})

	t.Run("circuit breaker integration", func(t *testing.T) {
		t.Parallel()
		cfg := newIntegrationConfig(uri, testutil.DatabaseName(t))
		cfg.Database.CircuitBreakerFailureThreshold = 2
		cfg.Database.CircuitBreakerSuccessThreshold = 1
		cfg.Database.CircuitBreakerTimeout = 100 * time.Millisecond

		components := InitializeDatabase(cfg)
		require.NotNil(t, components)
		defer components.Close(ctx)

		for _, name := range []string{"mongodb_activity", "mongodb_products", "mongodb_pricing", "mongodb_carts"} {
			cb, ok := components.CircuitBreakers[name]
			require.True(t, ok, name)
			stats := cb.GetStats()
			assert.Equal(t, "closed", stats.State)
			assert.True(t, stats.IsHealthy)
		}
	})
}
