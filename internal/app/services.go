// Package app provides service initialization.
package app

import (
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/service"
)

// ServiceComponents holds service-related components. Services backed by a
// repository are nil when the database is unavailable.
type ServiceComponents struct {
	Pricing   service.PricingSettingsService
	Catalog   service.CatalogService
	Carts     service.CartService
	Orders    service.OrderService
	Wishlist  service.WishlistService
	Dashboard service.DashboardService
	Sitemap   service.SitemapService
	Activity  service.ActivityService
	Auth      service.AuthService
	Access    service.AccessService
}

// InitializeServices initializes business logic services on top of db.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	defaults := pricingFromConfig(cfg.Pricing)
	if db == nil {
		// Pricing still answers with the configured defaults.
		return &ServiceComponents{
			Pricing: service.NewPricingSettingsService(nil, defaults),
		}
	}

	pricing := service.NewPricingSettingsService(db.PricingRepo, defaults)
	catalog := service.NewCatalogService(db.ProductRepo, db.CategoryRepo,
		service.WithCategoryCacheTTL(cfg.Cache.TTL))

	var auth service.AuthService
	var cartOpts []service.CartOption
	if db.UserRepo != nil {
		auth = service.NewAuthService(db.UserRepo, db.AccessRepo, db.TokenRepo, cfg.Auth)
		cartOpts = append(cartOpts, service.WithCheckoutDefaults(auth))
	}
	carts := service.NewCartService(catalog, pricing, db.AccountCarts, db.GuestCarts, cartOpts...)

	components := &ServiceComponents{
		Pricing:   pricing,
		Catalog:   catalog,
		Carts:     carts,
		Orders:    service.NewOrderService(db.OrderRepo, carts, catalog, db.ProductRepo, pricing),
		Wishlist:  service.NewWishlistService(db.WishlistRepo, catalog),
		Dashboard: service.NewDashboardService(db.ProductRepo, db.CategoryRepo, db.OrderRepo, db.UserRepo),
		Sitemap:   service.NewSitemapService(cfg.Server.PublicBaseURL, db.ProductRepo, db.CategoryRepo, cfg.Cache.SitemapTTL),
		Auth:      auth,
	}
	if db.ActivityRepo != nil {
		components.Activity = service.NewActivityService(db.ActivityRepo)
	}
	if db.AccessRepo != nil {
		components.Access = service.NewAccessService(db.AccessRepo)
	}

	return components
}

// Stop releases the background resources held by the service caches.
func (s *ServiceComponents) Stop() {
	for _, stopper := range []interface{ Stop() }{s.Pricing, s.Catalog, s.Sitemap, s.Access} {
		if stopper != nil {
			stopper.Stop()
		}
	}
}

func pricingFromConfig(cfg config.PricingConfig) cart.Pricing {
	p := cart.Pricing{
		TaxRate:               cfg.TaxRate,
		FlatShippingCost:      cfg.FlatShippingCost,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
	}
	if p.Validate() != nil {
		return cart.DefaultPricing()
	}
	return p
}
