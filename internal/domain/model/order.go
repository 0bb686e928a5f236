package model

import (
	"time"

	"github.com/guttosm/storefront-service/internal/cart"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderPaid, OrderCancelled},
	OrderPaid:    {OrderShipped, OrderCancelled},
	OrderShipped: {OrderDelivered},
}

// CanTransition reports whether an order in status s may move to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// PaymentMethod identifies how the shopper intends to pay.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentPayPal         PaymentMethod = "paypal"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentCashOnDelivery:
		return true
	}
	return false
}

// Address is a postal shipping address.
type Address struct {
	FullName   string `bson:"full_name" json:"fullName" binding:"required"`
	Line1      string `bson:"line1" json:"line1" binding:"required"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city" json:"city" binding:"required"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postal_code" json:"postalCode" binding:"required"`
	Country    string `bson:"country" json:"country" binding:"required,len=2"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// CheckoutInfo is the shipping and payment data kept alongside a cart.
type CheckoutInfo struct {
	Shipping      *Address      `bson:"shipping,omitempty" json:"shipping,omitempty"`
	PaymentMethod PaymentMethod `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
}

// Ready reports whether an order can be placed with this checkout info.
func (c CheckoutInfo) Ready() bool {
	return c.Shipping != nil && c.PaymentMethod.Valid()
}

// StatusChange records a transition in an order's history.
type StatusChange struct {
	Status    OrderStatus `bson:"status" json:"status"`
	ChangedBy string      `bson:"changed_by,omitempty" json:"changed_by,omitempty"`
	ChangedAt time.Time   `bson:"changed_at" json:"changed_at"`
}

// Order is a placed purchase. Lines and totals are frozen at placement.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner         string             `bson:"owner" json:"owner"`
	UserID        string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Lines         []cart.Line        `bson:"lines" json:"lines"`
	Totals        cart.Totals        `bson:"totals" json:"totals"`
	Pricing       cart.Pricing       `bson:"pricing" json:"pricing"`
	Shipping      Address            `bson:"shipping" json:"shipping"`
	PaymentMethod PaymentMethod      `bson:"payment_method" json:"payment_method"`
	Status        OrderStatus        `bson:"status" json:"status"`
	History       []StatusChange     `bson:"history,omitempty" json:"history,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Wishlist holds the product IDs a user saved for later.
type Wishlist struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	ProductIDs []string           `bson:"product_ids" json:"product_ids"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// DashboardStats summarises store activity for administrators.
type DashboardStats struct {
	Products       int64                 `json:"products"`
	ActiveProducts int64                 `json:"active_products"`
	Categories     int64                 `json:"categories"`
	Users          int64                 `json:"users"`
	Orders         int64                 `json:"orders"`
	OrdersByStatus map[OrderStatus]int64 `json:"orders_by_status"`
	Revenue        float64               `json:"revenue"`
	LowStock       []Product             `json:"low_stock"`
}
