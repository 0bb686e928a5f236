// Package main is the entry point for the storefront-service application.
//
// @title           Storefront Service API
// @version         1.0.0
// @description     Storefront backend: catalog, shopping cart with live totals, checkout and orders.
//
//	Cart totals (subtotal, tax, shipping and grand total) are derived from the cart lines on every read.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token as "Bearer <token>".
//
// @tag.name        Catalog
// @tag.description Products and categories
//
// @tag.name        Cart
// @tag.description Shopping cart and checkout information
//
// @tag.name        Orders
// @tag.description Order placement and tracking
//
// @tag.name        Wishlist
// @tag.description Saved products of a logged-in user
//
// @tag.name        Pricing
// @tag.description Tax and shipping settings applied to carts
//
// @tag.name        Admin
// @tag.description Catalog, order and pricing administration
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/storefront-service/docs" // swagger docs

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env file is fine: production reads the real environment.
	_ = godotenv.Load()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, cleanup := app.InitializeApp(cfg)
	err := app.NewServer(router, cfg.Server).Run(ctx)
	cleanup()
	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
