package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// OrderHandler provides HTTP handlers for placing and tracking orders.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new OrderHandler instance.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// PlaceOrder handles POST /api/orders requests.
//
// @Summary      Place order
// @Description  Turns the current cart into a pending order. Every line is checked against fresh stock, totals are derived with the active pricing settings, stock is reserved and the cart is cleared. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account carts"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PlaceOrderRequest false "Order contact"
// @Success      201 {object} dto.SuccessResponse{data=model.Order} "Placed order"
// @Failure      400 {object} dto.ErrorResponse "Empty cart or missing checkout information"
// @Failure      409 {object} dto.ErrorResponse "Out of stock"
// @Failure      503 {object} dto.ErrorResponse "Cart storage unavailable"
// @Router       /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PlaceOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			builder.ValidationError(err)
			return
		}
	}
	email := req.Email
	if email == "" {
		email = c.GetString("user_email")
	}

	owner := middleware.GetCartOwner(c)
	order, err := h.orders.Place(c.Request.Context(), owner, email)
	if err != nil {
		h.orderError(builder, err)
		return
	}

	middleware.Audit(c, "order.placed", "Order placed", map[string]interface{}{
		"order_id":    order.ID.Hex(),
		"owner":       order.Owner,
		"items":       order.Totals.TotalItemCount,
		"grand_total": order.Totals.GrandTotal,
	})
	builder.SuccessCreated(order)
}

// ListMyOrders handles GET /api/orders requests.
//
// @Summary      List my orders
// @Tags         Orders
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account orders"
// @Param        limit query int false "Page size (max 100)"
// @Param        skip query int false "Number of orders to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Order} "Orders"
// @Router       /api/orders [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	orders, err := h.orders.ListMine(c.Request.Context(), middleware.GetCartOwner(c),
		int64(queryInt(c, "limit", 0)), int64(queryInt(c, "skip", 0)))
	if err != nil {
		h.orderError(builder, err)
		return
	}
	if orders == nil {
		orders = []*model.Order{}
	}
	builder.SuccessOK(orders)
}

// GetMyOrder handles GET /api/orders/:id requests.
//
// @Summary      Get my order
// @Tags         Orders
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account orders"
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetMyOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.GetForOwner(c.Request.Context(), c.Param("id"), middleware.GetCartOwner(c))
	if err != nil {
		h.orderError(builder, err)
		return
	}
	builder.SuccessOK(order)
}

// CancelMyOrder handles POST /api/orders/:id/cancel requests.
//
// @Summary      Cancel my order
// @Description  Cancels a pending order and returns its stock to the catalog.
// @Tags         Orders
// @Produce      json
// @Param        X-Cart-ID header string false "Guest cart session"
// @Param        Authorization header string false "Bearer token for account orders"
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Cancelled order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      409 {object} dto.ErrorResponse "Order can no longer be cancelled"
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelMyOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.Cancel(c.Request.Context(), c.Param("id"), middleware.GetCartOwner(c))
	if err != nil {
		h.orderError(builder, err)
		return
	}

	middleware.Audit(c, "order.cancelled", "Order cancelled by owner", map[string]interface{}{"order_id": order.ID.Hex()})
	builder.SuccessOK(order)
}

// ListOrders handles GET /api/admin/orders requests.
//
// @Summary      List orders
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        status query string false "Filter by status" Enums(pending, paid, shipped, delivered, cancelled)
// @Param        limit query int false "Page size (max 100)"
// @Param        skip query int false "Number of orders to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Order} "Orders"
// @Failure      400 {object} dto.ErrorResponse "Unknown status"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Security     BearerAuth
// @Router       /api/admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)

	status := model.OrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	orders, err := h.orders.List(c.Request.Context(), status,
		int64(queryInt(c, "limit", 0)), int64(queryInt(c, "skip", 0)))
	if err != nil {
		h.orderError(builder, err)
		return
	}
	if orders == nil {
		orders = []*model.Order{}
	}
	builder.SuccessOK(orders)
}

// GetOrder handles GET /api/admin/orders/:id requests.
//
// @Summary      Get order
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Security     BearerAuth
// @Router       /api/admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.orderError(builder, err)
		return
	}
	builder.SuccessOK(order)
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status requests.
//
// @Summary      Change order status
// @Description  Moves an order along pending, paid, shipped, delivered. Pending and paid orders can be cancelled, which returns their stock.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Order ID"
// @Param        request body dto.UpdateOrderStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse{data=model.Order} "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      409 {object} dto.ErrorResponse "Transition not allowed"
// @Security     BearerAuth
// @Router       /api/admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	changedBy := c.GetString("user_email")
	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), changedBy)
	if err != nil {
		h.orderError(builder, err)
		return
	}

	middleware.Audit(c, "order.status_changed", "Order status changed", map[string]interface{}{
		"order_id": order.ID.Hex(),
		"status":   req.Status,
	})
	builder.SuccessOK(order)
}

func (h *OrderHandler) orderError(builder *ResponseBuilder, err error) {
	var oos *cart.OutOfStockError
	switch {
	case errors.As(err, &oos):
		builder.ErrorWithDetails(http.StatusConflict, i18n.ErrKeyOutOfStock, map[string]string{
			"productId": oos.ProductID,
			"requested": strconv.Itoa(oos.Requested),
			"available": strconv.Itoa(oos.Available),
		}, err)
	case errors.Is(err, service.ErrOrderNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
	case errors.Is(err, service.ErrProductNotFound):
		builder.Error(http.StatusConflict, i18n.ErrKeyProductNotFound, err)
	case errors.Is(err, service.ErrEmptyCart):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, err)
	case errors.Is(err, service.ErrCheckoutIncomplete):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyCheckoutIncomplete, err)
	case errors.Is(err, service.ErrInvalidStatusTransition):
		builder.Error(http.StatusConflict, i18n.ErrKeyInvalidStatusChange, err)
	case errors.Is(err, service.ErrInvalidCartOwner):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyCartOwnerRequired, err)
	case errors.Is(err, service.ErrCartUnavailable):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyCartUnavailable, err)
	case errors.Is(err, service.ErrPricingUnavailable):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
