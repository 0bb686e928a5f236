// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyCheckoutInfo is returned when a checkout update carries neither address nor payment method.
	ErrEmptyCheckoutInfo = &ValidationError{
		Field:   "checkout",
		Message: "shipping or paymentMethod is required",
	}
	// ErrEmptyProfile is returned when a profile update changes nothing.
	ErrEmptyProfile = &ValidationError{
		Field:   "profile",
		Message: "at least one field is required",
	}
	// ErrInvalidTaxRate is returned when the tax rate is outside [0, 1].
	ErrInvalidTaxRate = &ValidationError{
		Field:   "taxRate",
		Message: "must be between 0 and 1",
	}
)

// AddCartItemRequest represents the JSON request body for adding a product to the cart.
//
// @Description Add one unit of a product to the cart
// @Example {"productId": "665f1c2e8a4b2c0012345678"}
type AddCartItemRequest struct {
	// ProductID is the catalog ID of the product.
	ProductID string `json:"productId" binding:"required,objectid" example:"665f1c2e8a4b2c0012345678"`
} // @name AddCartItemRequest

// UpdateCartItemRequest represents the JSON request body for setting a line quantity.
// A quantity below 1 removes the line.
//
// @Description Set the quantity of a cart line
// @Example {"quantity": 3}
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"3"`
} // @name UpdateCartItemRequest

// CheckoutInfoRequest represents the shipping address and payment method kept with the cart.
// Omitted fields keep their stored value.
//
// @Description Shipping address and payment method for checkout
type CheckoutInfoRequest struct {
	Shipping      *model.Address `json:"shipping"`
	PaymentMethod string         `json:"paymentMethod" binding:"omitempty,oneof=card paypal cod" example:"card"`
} // @name CheckoutInfoRequest

// Validate checks that the request changes something.
func (r *CheckoutInfoRequest) Validate() error {
	if r.Shipping == nil && r.PaymentMethod == "" {
		return ErrEmptyCheckoutInfo
	}
	return nil
}

// ToModel converts the request to checkout info.
func (r *CheckoutInfoRequest) ToModel() model.CheckoutInfo {
	info := model.CheckoutInfo{PaymentMethod: model.PaymentMethod(r.PaymentMethod)}
	if r.Shipping != nil {
		addr := *r.Shipping
		addr.Country = strings.ToUpper(addr.Country)
		info.Shipping = &addr
	}
	return info
}

// PlaceOrderRequest represents the JSON request body for placing an order from the cart.
//
// @Description Place an order from the current cart
// @Example {"email": "user@example.com"}
type PlaceOrderRequest struct {
	// Email receives the order confirmation. Defaults to the account email.
	Email string `json:"email,omitempty" binding:"omitempty,email" example:"user@example.com"`
} // @name PlaceOrderRequest

// UpdateOrderStatusRequest represents the JSON request body for moving an order along its lifecycle.
//
// @Description Change the status of an order
// @Example {"status": "shipped"}
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled" example:"shipped"`
} // @name UpdateOrderStatusRequest

// ProductRequest represents the JSON request body for creating or replacing a product.
//
// @Description Catalog product
type ProductRequest struct {
	Name        string  `json:"name" binding:"required,max=200" example:"Ceramic Mug"`
	Slug        string  `json:"slug,omitempty" binding:"omitempty,max=200" example:"ceramic-mug"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" binding:"gte=0" example:"19.9"`
	Image       string  `json:"image,omitempty" binding:"omitempty,url"`
	Category    string  `json:"category,omitempty" example:"kitchen"`
	Stock       int     `json:"stock" binding:"gte=0" example:"12"`
	// Active defaults to true.
	Active *bool `json:"active,omitempty"`
} // @name ProductRequest

// ToModel converts the request to a product.
func (r *ProductRequest) ToModel() *model.Product {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &model.Product{
		Name:        strings.TrimSpace(r.Name),
		Slug:        r.Slug,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		Category:    r.Category,
		Stock:       r.Stock,
		Active:      active,
	}
}

// CategoryRequest represents the JSON request body for creating a category.
//
// @Description Catalog category
// @Example {"name": "Kitchen"}
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Kitchen"`
	Slug        string `json:"slug,omitempty" example:"kitchen"`
	Description string `json:"description,omitempty"`
} // @name CategoryRequest

// ToModel converts the request to a category.
func (r *CategoryRequest) ToModel() *model.Category {
	return &model.Category{
		Name:        strings.TrimSpace(r.Name),
		Slug:        r.Slug,
		Description: r.Description,
	}
}

// WishlistItemRequest represents the JSON request body for saving a product to the wishlist.
//
// @Description Save a product for later
// @Example {"productId": "665f1c2e8a4b2c0012345678"}
type WishlistItemRequest struct {
	ProductID string `json:"productId" binding:"required,objectid" example:"665f1c2e8a4b2c0012345678"`
} // @name WishlistItemRequest

// UpdatePricingRequest represents the JSON request body for publishing new pricing settings.
//
// @Description Tax and shipping settings applied to carts and orders
// @Example {"taxRate": 0.08, "flatShippingCost": 10, "freeShippingThreshold": 150}
type UpdatePricingRequest struct {
	TaxRate               *float64 `json:"taxRate" binding:"required,gte=0" example:"0.08"`
	FlatShippingCost      *float64 `json:"flatShippingCost" binding:"required,gte=0" example:"10"`
	FreeShippingThreshold *float64 `json:"freeShippingThreshold" binding:"required,gte=0" example:"150"`
} // @name UpdatePricingRequest

// Validate performs checks the binding tags cannot express.
func (r *UpdatePricingRequest) Validate() error {
	if r.TaxRate != nil && *r.TaxRate > 1 {
		return ErrInvalidTaxRate
	}
	return nil
}

// ToPricing converts the request to pricing settings. Missing values are zero.
func (r *UpdatePricingRequest) ToPricing() cart.Pricing {
	var p cart.Pricing
	if r.TaxRate != nil {
		p.TaxRate = *r.TaxRate
	}
	if r.FlatShippingCost != nil {
		p.FlatShippingCost = *r.FlatShippingCost
	}
	if r.FreeShippingThreshold != nil {
		p.FreeShippingThreshold = *r.FreeShippingThreshold
	}
	return p
}
