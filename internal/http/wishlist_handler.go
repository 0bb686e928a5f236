package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistHandler provides HTTP handlers for the logged-in user's wishlist.
type WishlistHandler struct {
	wishlists service.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler instance.
func NewWishlistHandler(wishlists service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists}
}

// GetWishlist handles GET /api/wishlist requests.
//
// @Summary      Get wishlist
// @Description  Returns the saved products that are still available.
// @Tags         Wishlist
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.WishlistResponse} "Saved products"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Security     BearerAuth
// @Router       /api/wishlist [get]
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	_, products, err := h.wishlists.Get(c.Request.Context(), userID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if products == nil {
		products = []*model.Product{}
	}
	builder.SuccessOK(dto.WishlistResponse{Products: products})
}

// AddToWishlist handles POST /api/wishlist requests.
//
// @Summary      Save product
// @Tags         Wishlist
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.WishlistItemRequest true "Product to save"
// @Success      200 {object} dto.SuccessResponse "Saved"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Security     BearerAuth
// @Router       /api/wishlist [post]
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	var req dto.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	if err := h.wishlists.Add(c.Request.Context(), userID, req.ProductID); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(gin.H{"productId": req.ProductID, "saved": true})
}

// RemoveFromWishlist handles DELETE /api/wishlist/:productId requests.
//
// @Summary      Remove saved product
// @Tags         Wishlist
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        productId path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Removed"
// @Security     BearerAuth
// @Router       /api/wishlist/{productId} [delete]
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	builder := NewResponseBuilder(c)

	userID, ok := currentUserID(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	productID := c.Param("productId")
	if err := h.wishlists.Remove(c.Request.Context(), userID, productID); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(gin.H{"productId": productID, "saved": false})
}

// currentUserID returns the hex ID of the authenticated user.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex(), !id.IsZero()
	case string:
		return id, id != ""
	}
	return "", false
}
