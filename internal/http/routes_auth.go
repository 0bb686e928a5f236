package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/middleware"
)

// AuthRoutes handles sign-in and account route registration.
type AuthRoutes struct {
	handler *AuthHandler
	cfg     *RouterConfig
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(cfg *RouterConfig) *AuthRoutes {
	return &AuthRoutes{
		handler: NewAuthHandler(cfg.AuthService, cfg.CartService),
		cfg:     cfg,
	}
}

// RegisterPublicRoutes registers sign-in, registration and token refresh.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
		auth.POST("/register", r.handler.Register)
		auth.POST("/refresh", r.handler.RefreshToken)
	}
}

// ProtectedGroup returns a group that requires a valid access token.
func (r *AuthRoutes) ProtectedGroup(rg *gin.RouterGroup) *gin.RouterGroup {
	return rg.Group("", middleware.JWTAuth(r.cfg.AuthService))
}

// RegisterProtectedRoutes registers sign-out and the account routes.
func (r *AuthRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", r.handler.Logout)
	protected.GET("/account", r.handler.GetAccount)
	protected.PUT("/account/profile", r.handler.UpdateProfile)
}
