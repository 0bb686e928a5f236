//go:build integration

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/guttosm/storefront-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	storeFixture
}

// setupAccountIntegrationRouter builds the router with accounts enabled and
// a customer role without permissions.
func setupAccountIntegrationRouter(t *testing.T) *accountFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := repository.NewMongoDB(testutil.MongoURI(), testutil.DatabaseName(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	accessRepo := repository.NewAccessRepository(db)
	require.NoError(t, accessRepo.EnsureRole(ctx, &model.Role{Name: model.RoleCustomer, Permissions: []string{}}))

	products := repository.NewProductRepository(db)
	categories := repository.NewCategoryRepository(db)
	carts := repository.NewCartRepository(db)

	auth := service.NewAuthService(repository.NewUserRepository(db), accessRepo, repository.NewTokenRepository(db), config.AuthConfig{
		Enabled:          true,
		JWTSecretKey:     "integration-access-secret",
		JWTRefreshSecret: "integration-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  time.Hour,
	})
	access := service.NewAccessService(accessRepo)
	pricing := service.NewPricingSettingsService(repository.NewPricingSettingsRepository(db), cart.DefaultPricing())
	catalog := service.NewCatalogService(products, categories)
	cartService := service.NewCartService(catalog, pricing, carts, carts, service.WithCheckoutDefaults(auth))
	t.Cleanup(func() {
		pricing.Stop()
		catalog.Stop()
		access.Stop()
	})

	router := NewRouter(NewHealthHandler(), RouterConfig{
		EnableAuth:     true,
		AuthService:    auth,
		AccessService:  access,
		CatalogService: catalog,
		CartService:    cartService,
		OrderService:   service.NewOrderService(repository.NewOrderRepository(db), cartService, catalog, products, pricing),
		PricingService: pricing,
	})

	return &accountFixture{storeFixture{router: router, products: products}}
}

func (f *accountFixture) call(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(f.router, method, path, body, headers...)
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}

func TestAccountFlow_Integration(t *testing.T) {
	t.Parallel()
	f := setupAccountIntegrationRouter(t)

	w := f.call(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email: "Ana@Example.com", Username: "ana.lima", Password: "correct-horse", Name: "Ana",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	registered := decodeData[dto.AuthResponse](t, w)
	assert.Equal(t, "ana@example.com", registered.Account.Email)

	t.Run("duplicate email is refused", func(t *testing.T) {
		w := f.call(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
			Email: "ana@example.com", Username: "someone.else", Password: "correct-horse",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login by username", func(t *testing.T) {
		w := f.call(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Login: "ana.lima", Password: "correct-horse"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotEmpty(t, decodeData[dto.AuthResponse](t, w).AccessToken)

		w = f.call(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Login: "ana.lima", Password: "wrong-horse"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile prefills the account cart", func(t *testing.T) {
		home := model.Address{FullName: "Ana Lima", Line1: "Rua Augusta 10", City: "Lisboa", PostalCode: "1100-053", Country: "PT"}
		w := f.call(t, http.MethodPut, "/api/account/profile",
			map[string]interface{}{"defaultShipping": home, "preferredPayment": "card"},
			bearer(registered.AccessToken)...)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = f.call(t, http.MethodGet, "/api/cart", nil, bearer(registered.AccessToken)...)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeData[dto.CartResponse](t, w)
		require.NotNil(t, resp.Checkout.Shipping)
		assert.Equal(t, "Lisboa", resp.Checkout.Shipping.City)
		assert.Equal(t, model.PaymentCard, resp.Checkout.PaymentMethod)
	})

	t.Run("customers cannot administer", func(t *testing.T) {
		w := f.call(t, http.MethodGet, "/api/admin/orders", nil, bearer(registered.AccessToken)...)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAccountTokens_Integration(t *testing.T) {
	t.Parallel()
	f := setupAccountIntegrationRouter(t)

	w := f.call(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email: "bruno@example.com", Username: "bruno", Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decodeData[dto.AuthResponse](t, w)

	w = f.call(t, http.MethodPost, "/api/auth/refresh", nil, RefreshTokenHeader, first.RefreshToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := decodeData[dto.TokenPair](t, w)

	t.Run("refresh token is single use", func(t *testing.T) {
		w := f.call(t, http.MethodPost, "/api/auth/refresh", nil, RefreshTokenHeader, first.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout revokes the access token", func(t *testing.T) {
		headers := append(bearer(second.AccessToken), RefreshTokenHeader, second.RefreshToken)
		w := f.call(t, http.MethodPost, "/api/auth/logout", nil, headers...)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = f.call(t, http.MethodGet, "/api/account", nil, bearer(second.AccessToken)...)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = f.call(t, http.MethodPost, "/api/auth/refresh", nil, RefreshTokenHeader, second.RefreshToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLoginMergesGuestCart_Integration(t *testing.T) {
	t.Parallel()
	f := setupAccountIntegrationRouter(t)
	ctx := context.Background()

	mug := &model.Product{Name: "Ceramic Mug", Slug: "ceramic-mug", Price: 60, Category: "kitchen", Stock: 5, Active: true}
	require.NoError(t, f.products.Create(ctx, mug))

	w := f.call(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email: "carla@example.com", Username: "carla", Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/cart/items", "", dto.AddCartItemRequest{ProductID: mug.ID.Hex()})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	session := w.Header().Get(middleware.CartIDHeader)
	require.NotEmpty(t, session)

	w = f.call(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Login: "carla", Password: "correct-horse"},
		middleware.CartIDHeader, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeData[dto.AuthResponse](t, w)
	require.NotNil(t, resp.MergedCart)
	require.Len(t, resp.MergedCart.Lines, 1)
	assert.Equal(t, 1, resp.MergedCart.Lines[0].Quantity)

	// The guest cart was emptied by the merge
	w = f.do(t, http.MethodGet, "/api/cart", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData[dto.CartResponse](t, w).Lines)
}
