package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// StoreRoutes handles storefront route registration: catalog, cart, orders,
// wishlist and administration.
type StoreRoutes struct {
	catalog  *CatalogHandler
	carts    *CartHandler
	orders   *OrderHandler
	pricing  *PricingHandler
	wishlist *WishlistHandler
	admin    *AdminHandler
}

// NewStoreRoutes creates a new StoreRoutes instance. Handlers whose service is
// not configured are not registered.
func NewStoreRoutes(cfg *RouterConfig) *StoreRoutes {
	r := &StoreRoutes{}
	if cfg.CatalogService != nil {
		r.catalog = NewCatalogHandler(cfg.CatalogService, cfg.SitemapService)
	}
	if cfg.CartService != nil {
		r.carts = NewCartHandler(cfg.CartService)
	}
	if cfg.OrderService != nil {
		r.orders = NewOrderHandler(cfg.OrderService)
	}
	if cfg.PricingService != nil {
		r.pricing = NewPricingHandler(cfg.PricingService)
	}
	if cfg.WishlistService != nil {
		r.wishlist = NewWishlistHandler(cfg.WishlistService)
	}
	if cfg.DashboardService != nil || cfg.ActivityService != nil {
		r.admin = NewAdminHandler(cfg.DashboardService, cfg.ActivityService)
	}
	return r
}

// RegisterShopperRoutes registers the routes available to everyone. Cart and
// order routes resolve their owner from the bearer token when authService is
// set, otherwise from the guest cart session.
func (r *StoreRoutes) RegisterShopperRoutes(rg *gin.RouterGroup, authService service.AuthService) {
	if r.catalog != nil {
		rg.GET("/products", r.catalog.ListProducts)
		rg.GET("/products/:idOrSlug", r.catalog.GetProduct)
		rg.GET("/categories", r.catalog.ListCategories)
	}
	if r.pricing != nil {
		rg.GET("/pricing", r.pricing.GetPricing)
	}

	session := rg.Group("", middleware.CartSession(authService))
	if r.carts != nil {
		cartGroup := session.Group("/cart")
		{
			cartGroup.GET("", r.carts.GetCart)
			cartGroup.DELETE("", r.carts.ClearCart)
			cartGroup.POST("/items", r.carts.AddItem)
			cartGroup.PUT("/items/:productId", r.carts.UpdateItem)
			cartGroup.DELETE("/items/:productId", r.carts.RemoveItem)
			cartGroup.PUT("/checkout-info", r.carts.SetCheckoutInfo)
		}
	}
	if r.orders != nil {
		orderGroup := session.Group("/orders")
		{
			orderGroup.POST("", r.orders.PlaceOrder)
			orderGroup.GET("", r.orders.ListMyOrders)
			orderGroup.GET("/:id", r.orders.GetMyOrder)
			orderGroup.POST("/:id/cancel", r.orders.CancelMyOrder)
		}
	}
}

// RegisterPublicRoutes registers every storefront route without
// authentication (when auth is disabled). The wishlist needs a user and is not
// registered.
func (r *StoreRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.RegisterShopperRoutes(rg, nil)
	r.registerAdminRoutes(rg, func(string) []gin.HandlerFunc { return nil })
}

// RegisterProtectedRoutes registers the routes that need a logged-in user
// (when auth is enabled). Administration routes also need the matching
// permission and are left out when no access service is configured.
func (r *StoreRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	if r.wishlist != nil {
		protected.GET("/wishlist", r.wishlist.GetWishlist)
		protected.POST("/wishlist", r.wishlist.AddToWishlist)
		protected.DELETE("/wishlist/:productId", r.wishlist.RemoveFromWishlist)
	}
	if r.carts != nil {
		protected.POST("/cart/merge", middleware.CartSession(cfg.AuthService), r.carts.MergeCart)
	}

	if cfg.AccessService == nil {
		// Without roles nobody can be granted administration.
		return
	}
	r.registerAdminRoutes(protected, func(permission string) []gin.HandlerFunc {
		return []gin.HandlerFunc{middleware.RequirePermission(cfg.AccessService, permission)}
	})
}

// registerAdminRoutes registers catalog management, order management, pricing,
// dashboard and activity routes behind the middleware returned by guard.
func (r *StoreRoutes) registerAdminRoutes(rg *gin.RouterGroup, guard func(permission string) []gin.HandlerFunc) {
	with := func(permission string, h gin.HandlerFunc) []gin.HandlerFunc {
		return append(guard(permission), h)
	}

	if r.catalog != nil {
		rg.POST("/products", with("products:write", r.catalog.CreateProduct)...)
		rg.PUT("/products/:id", with("products:write", r.catalog.UpdateProduct)...)
		rg.DELETE("/products/:id", with("products:write", r.catalog.DeleteProduct)...)
		rg.POST("/categories", with("products:write", r.catalog.CreateCategory)...)
		rg.DELETE("/categories/:id", with("products:write", r.catalog.DeleteCategory)...)
		rg.GET("/admin/products", with("products:read", r.catalog.ListAllProducts)...)
	}
	if r.orders != nil {
		rg.GET("/admin/orders", with("orders:read", r.orders.ListOrders)...)
		rg.GET("/admin/orders/:id", with("orders:read", r.orders.GetOrder)...)
		rg.PUT("/admin/orders/:id/status", with("orders:write", r.orders.UpdateOrderStatus)...)
	}
	if r.pricing != nil {
		rg.PUT("/admin/pricing", with("pricing:write", r.pricing.UpdatePricing)...)
		rg.GET("/admin/pricing/history", with("pricing:write", r.pricing.ListPricing)...)
	}
	if r.admin != nil && r.admin.dashboard != nil {
		rg.GET("/admin/dashboard", with("dashboard:read", r.admin.Dashboard)...)
	}
	if r.admin != nil && r.admin.activity != nil {
		rg.GET("/admin/activity", with("activity:read", r.admin.Activity)...)
	}
}
