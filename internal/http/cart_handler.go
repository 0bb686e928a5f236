package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

var noticeKeys = map[cart.NoticeKind]string{
	cart.NoticeAdded:       i18n.NoticeKeyAdded,
	cart.NoticeIncremented: i18n.NoticeKeyIncremented,
	cart.NoticeUpdated:     i18n.NoticeKeyUpdated,
	cart.NoticeRemoved:     i18n.NoticeKeyRemoved,
	cart.NoticeCleared:     i18n.NoticeKeyCleared,
	cart.NoticeMerged:      i18n.NoticeKeyMerged,
	cart.NoticeOutOfStock:  i18n.NoticeKeyOutOfStock,
	cart.NoticeUnchanged:   i18n.NoticeKeyUnchanged,
}

// CartHandler provides HTTP handlers for the shopping cart of the current
// guest session or account.
type CartHandler struct {
	carts service.CartService
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get cart
// @Description  Returns the cart lines with subtotal, tax, shipping and grand total derived from the current pricing settings. Guests are identified by the X-Cart-ID header, which is issued when missing.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account carts"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	view, err := h.carts.Get(c.Request.Context(), middleware.GetCartOwner(c))
	h.respond(c, view, err)
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add product to cart
// @Description  Adds one unit of the product. A product already in the cart is incremented, up to its available stock. When the stock is exhausted the unchanged cart is returned with status 409 and an out_of_stock notice carrying the available quantity.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account carts"
// @Param        request body dto.AddCartItemRequest true "Product to add"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      409 {object} dto.SuccessResponse{data=dto.CartResponse} "Out of stock - cart unchanged"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	view, err := h.carts.AddItem(c.Request.Context(), middleware.GetCartOwner(c), req.ProductID)
	h.respond(c, view, err)
}

// UpdateItem handles PUT /api/cart/items/:productId requests.
//
// @Summary      Set cart line quantity
// @Description  Sets the quantity of a line. A quantity below 1 removes the line; a quantity above the available stock is refused with status 409 and the line keeps its quantity. Updating a product that is not in the cart changes nothing.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account carts"
// @Param        productId path string true "Product ID"
// @Param        request body dto.UpdateCartItemRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.SuccessResponse{data=dto.CartResponse} "Out of stock - cart unchanged"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	view, err := h.carts.UpdateItem(c.Request.Context(), middleware.GetCartOwner(c), c.Param("productId"), *req.Quantity)
	h.respond(c, view, err)
}

// RemoveItem handles DELETE /api/cart/items/:productId requests.
//
// @Summary      Remove product from cart
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account carts"
// @Param        productId path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.carts.RemoveItem(c.Request.Context(), middleware.GetCartOwner(c), c.Param("productId"))
	h.respond(c, view, err)
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear cart
// @Description  Removes every line. Shipping address and payment method are kept.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account carts"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Empty cart"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	view, err := h.carts.Clear(c.Request.Context(), middleware.GetCartOwner(c))
	h.respond(c, view, err)
}

// SetCheckoutInfo handles PUT /api/cart/checkout-info requests.
//
// @Summary      Set shipping address and payment method
// @Description  Stores the shipping address and payment method used when the order is placed. Omitted fields keep their stored value.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account carts"
// @Param        request body dto.CheckoutInfoRequest true "Checkout information"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Router       /api/cart/checkout-info [put]
func (h *CartHandler) SetCheckoutInfo(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindJSON[dto.CheckoutInfoRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	view, err := h.carts.SetCheckoutInfo(c.Request.Context(), middleware.GetCartOwner(c), req.ToModel())
	h.respond(c, view, err)
}

// MergeCart handles POST /api/cart/merge requests.
//
// @Summary      Merge guest cart into account cart
// @Description  Moves the lines of the guest cart named by X-Cart-ID into the cart of the logged-in user, capping each quantity at the available stock. The guest cart is deleted afterwards.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-ID header string true "Guest cart session to merge"
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Merged account cart"
// @Failure      400 {object} dto.ErrorResponse "Missing guest cart session"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Security     BearerAuth
// @Router       /api/cart/merge [post]
func (h *CartHandler) MergeCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	account := middleware.GetCartOwner(c)
	if account.IsGuest() {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}
	if c.GetHeader(middleware.CartIDHeader) == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyCartSessionRequired, nil)
		return
	}

	view, err := h.carts.Merge(c.Request.Context(), middleware.GuestOwner(c), account)
	if err == nil {
		middleware.Audit(c, "cart.merged", "Guest cart merged into account cart", map[string]interface{}{
			"guest_session": account.SessionID,
			"lines":         len(view.Lines),
		})
	}
	h.respond(c, view, err)
}

// respond renders a cart operation result. Out-of-stock refusals carry the
// unchanged cart with status 409.
func (h *CartHandler) respond(c *gin.Context, view *service.CartView, err error) {
	builder := NewResponseBuilder(c)

	var oos *cart.OutOfStockError
	switch {
	case err == nil:
		builder.SuccessOK(cartResponse(c, view))
	case errors.As(err, &oos) && view != nil:
		builder.Success(http.StatusConflict, cartResponse(c, view))
	case errors.Is(err, service.ErrProductNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
	case errors.Is(err, service.ErrInvalidCartOwner):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyCartOwnerRequired, err)
	case errors.Is(err, service.ErrInvalidPaymentMethod):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPaymentMethod, err)
	case errors.Is(err, cart.ErrEmptyProductID):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
	case errors.Is(err, service.ErrCartUnavailable):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCartUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func cartResponse(c *gin.Context, view *service.CartView) dto.CartResponse {
	resp := dto.CartResponse{
		Lines:     view.Lines,
		Totals:    view.Totals,
		Pricing:   view.Pricing,
		Checkout:  view.Checkout,
		Saved:     view.Saved,
		Discarded: view.Discarded,
	}
	if resp.Lines == nil {
		resp.Lines = []cart.Line{}
	}
	if view.Owner.IsGuest() {
		resp.CartID = view.Owner.SessionID
	}
	if view.Notice != nil {
		resp.Notice = noticeResponse(i18n.GetLocale(c), *view.Notice)
	}
	return resp
}

func noticeResponse(locale string, n cart.Notice) *dto.NoticeResponse {
	key, ok := noticeKeys[n.Kind]
	if !ok {
		key = i18n.NoticeKeyUnchanged
	}
	return &dto.NoticeResponse{
		Kind:      string(n.Kind),
		ProductID: n.ProductID,
		Quantity:  n.Quantity,
		Available: n.Available,
		Message: i18n.GetTranslator().Format(key, locale, map[string]string{
			"name":      n.Name,
			"quantity":  strconv.Itoa(n.Quantity),
			"available": strconv.Itoa(n.Available),
		}),
	}
}
