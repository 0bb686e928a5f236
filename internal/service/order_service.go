package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrOrderNotFound is returned when an order does not exist or belongs to someone else.
	ErrOrderNotFound = errors.New("order not found")
	// ErrEmptyCart is returned when placing an order from a cart without lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutIncomplete is returned when the cart lacks a shipping address or payment method.
	ErrCheckoutIncomplete = errors.New("shipping address and payment method are required")
	// ErrInvalidStatusTransition is returned when an order cannot move to the requested status.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

const maxOrdersPageSize = 100

// StockReserver adjusts catalog stock when orders are placed or cancelled.
type StockReserver interface {
	DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error
	IncrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error
}

// OrderService places and tracks orders.
type OrderService interface {
	Place(ctx context.Context, owner model.CartOwner, email string) (*model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)
	GetForOwner(ctx context.Context, id string, owner model.CartOwner) (*model.Order, error)
	ListMine(ctx context.Context, owner model.CartOwner, limit, skip int64) ([]*model.Order, error)
	List(ctx context.Context, status model.OrderStatus, limit, skip int64) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id string, to model.OrderStatus, changedBy string) (*model.Order, error)
	Cancel(ctx context.Context, id string, owner model.CartOwner) (*model.Order, error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	orders  repository.OrderRepositoryInterface
	carts   CartService
	stock   StockSource
	reserve StockReserver
	pricing PricingSource
}

// NewOrderService creates a new order service.
func NewOrderService(
	orders repository.OrderRepositoryInterface,
	carts CartService,
	stock StockSource,
	reserve StockReserver,
	pricing PricingSource,
) OrderService {
	return &OrderServiceImpl{
		orders:  orders,
		carts:   carts,
		stock:   stock,
		reserve: reserve,
		pricing: pricing,
	}
}

// Place turns the owner's cart into a pending order. Every line is checked
// against fresh stock and the stock is reserved before the order is stored.
// The cart is discarded once the order exists.
func (s *OrderServiceImpl) Place(ctx context.Context, owner model.CartOwner, email string) (*model.Order, error) {
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}

	view, err := s.carts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(view.Lines) == 0 {
		metrics.RecordOrderPlaced("empty_cart", 0)
		return nil, ErrEmptyCart
	}
	if !view.Checkout.Ready() {
		metrics.RecordOrderPlaced("incomplete", 0)
		return nil, ErrCheckoutIncomplete
	}

	c, err := s.recheck(ctx, view.Lines)
	if err != nil {
		metrics.RecordOrderPlaced(placementResult(err), 0)
		return nil, err
	}

	// An order is never priced with fallback values the admin did not set.
	pricing := cart.DefaultPricing()
	if s.pricing != nil {
		if pricing, err = s.pricing.Active(ctx); err != nil {
			metrics.RecordOrderPlaced("error", 0)
			return nil, err
		}
	}
	lines := c.Lines()

	reserved, err := s.reserveStock(ctx, lines)
	if err != nil {
		metrics.RecordOrderPlaced(placementResult(err), 0)
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.Order{
		Owner:         owner.Key(),
		UserID:        owner.UserID,
		Email:         email,
		Lines:         lines,
		Totals:        c.Totals(pricing),
		Pricing:       pricing,
		Shipping:      *view.Checkout.Shipping,
		PaymentMethod: view.Checkout.PaymentMethod,
		Status:        model.OrderPending,
		History:       []model.StatusChange{{Status: model.OrderPending, ChangedBy: owner.Key(), ChangedAt: now}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.releaseStock(ctx, reserved)
		metrics.RecordOrderPlaced("error", 0)
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.Discard(ctx, owner); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID.Hex()).Msg("Failed to discard cart after order placement")
	}

	metrics.RecordOrderPlaced("success", order.Totals.GrandTotal)
	log.Info().
		Str("order_id", order.ID.Hex()).
		Str("owner", order.Owner).
		Int("items", order.Totals.TotalItemCount).
		Float64("grand_total", order.Totals.GrandTotal).
		Msg("Order placed")
	return order, nil
}

// recheck replays every line quantity against the product's current stock.
func (s *OrderServiceImpl) recheck(ctx context.Context, lines []cart.Line) (*cart.Cart, error) {
	c, err := cart.FromLines(lines)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		ceiling := 0
		product, err := s.stock.Product(ctx, line.ProductID)
		switch {
		case errors.Is(err, ErrProductNotFound):
		case err != nil:
			return nil, err
		default:
			ceiling = product.Purchasable()
		}
		if _, err := c.UpdateQuantity(line.ProductID, line.Quantity, ceiling); err != nil {
			return nil, err
		}
	}
	return c, nil
}

type reservation struct {
	id       primitive.ObjectID
	quantity int
}

func (s *OrderServiceImpl) reserveStock(ctx context.Context, lines []cart.Line) ([]reservation, error) {
	reserved := make([]reservation, 0, len(lines))
	for _, line := range lines {
		id, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			s.releaseStock(ctx, reserved)
			return nil, ErrProductNotFound
		}
		if err := s.reserve.DecrementStock(ctx, id, line.Quantity); err != nil {
			s.releaseStock(ctx, reserved)
			if errors.Is(err, repository.ErrInsufficientStock) {
				return nil, s.outOfStock(ctx, line)
			}
			return nil, fmt.Errorf("reserve stock for %s: %w", line.ProductID, err)
		}
		reserved = append(reserved, reservation{id: id, quantity: line.Quantity})
	}
	return reserved, nil
}

func (s *OrderServiceImpl) outOfStock(ctx context.Context, line cart.Line) error {
	available := 0
	if product, err := s.stock.Product(ctx, line.ProductID); err == nil {
		available = product.Purchasable()
	}
	return &cart.OutOfStockError{ProductID: line.ProductID, Requested: line.Quantity, Available: available}
}

// releaseTimeout bounds handing reserved stock back to the catalog.
const releaseTimeout = 10 * time.Second

// releaseStock returns reserved stock. It runs detached from ctx so a
// cancelled or timed out request still gives its reservation back.
func (s *OrderServiceImpl) releaseStock(ctx context.Context, reserved []reservation) {
	if len(reserved) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
	defer cancel()
	for _, r := range reserved {
		if err := s.reserve.IncrementStock(ctx, r.id, r.quantity); err != nil {
			log.Error().Err(err).Str("product_id", r.id.Hex()).Int("quantity", r.quantity).Msg("Failed to release reserved stock")
		}
	}
}

func (s *OrderServiceImpl) Get(ctx context.Context, id string) (*model.Order, error) {
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	order, err := s.orders.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetForOwner returns the order only if owner placed it.
func (s *OrderServiceImpl) GetForOwner(ctx context.Context, id string, owner model.CartOwner) (*model.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Owner != owner.Key() {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderServiceImpl) ListMine(ctx context.Context, owner model.CartOwner, limit, skip int64) ([]*model.Order, error) {
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if !owner.Valid() {
		return nil, ErrInvalidCartOwner
	}
	limit, skip = orderPage(limit, skip)
	return s.orders.ListByOwner(ctx, owner.Key(), limit, skip)
}

func (s *OrderServiceImpl) List(ctx context.Context, status model.OrderStatus, limit, skip int64) ([]*model.Order, error) {
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatusTransition
	}
	limit, skip = orderPage(limit, skip)
	return s.orders.List(ctx, status, limit, skip)
}

// UpdateStatus moves an order along its lifecycle. Cancelling returns the
// reserved stock to the catalog.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id string, to model.OrderStatus, changedBy string) (*model.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, order, to, changedBy)
}

// Cancel lets the owner cancel an order that has not been paid yet.
func (s *OrderServiceImpl) Cancel(ctx context.Context, id string, owner model.CartOwner) (*model.Order, error) {
	order, err := s.GetForOwner(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if order.Status != model.OrderPending {
		return nil, ErrInvalidStatusTransition
	}
	return s.transition(ctx, order, model.OrderCancelled, owner.Key())
}

func (s *OrderServiceImpl) transition(ctx context.Context, order *model.Order, to model.OrderStatus, changedBy string) (*model.Order, error) {
	if !order.Status.CanTransition(to) {
		return nil, ErrInvalidStatusTransition
	}
	updated, err := s.orders.UpdateStatus(ctx, order.ID, order.Status, to, changedBy)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// status changed concurrently
		return nil, ErrInvalidStatusTransition
	}

	if to == model.OrderCancelled {
		reserved := make([]reservation, 0, len(order.Lines))
		for _, line := range order.Lines {
			if pid, err := primitive.ObjectIDFromHex(line.ProductID); err == nil {
				reserved = append(reserved, reservation{id: pid, quantity: line.Quantity})
			}
		}
		s.releaseStock(ctx, reserved)
	}

	log.Info().
		Str("order_id", order.ID.Hex()).
		Str("from", string(order.Status)).
		Str("to", string(to)).
		Str("changed_by", changedBy).
		Msg("Order status changed")
	return updated, nil
}

func orderPage(limit, skip int64) (int64, int64) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxOrdersPageSize {
		limit = maxOrdersPageSize
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}

func placementResult(err error) string {
	switch {
	case errors.Is(err, cart.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, ErrProductNotFound):
		return "product_not_found"
	default:
		return "error"
	}
}
