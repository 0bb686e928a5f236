package dto

import (
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/model"
)

// NoticeResponse is the shopper-facing outcome of a cart operation.
//
// @Description Outcome of a cart mutation
type NoticeResponse struct {
	Kind      string `json:"kind" example:"out_of_stock"`
	ProductID string `json:"productId,omitempty" example:"665f1c2e8a4b2c0012345678"`
	Quantity  int    `json:"quantity,omitempty" example:"2"`
	Available int    `json:"available" example:"2"`
	Message   string `json:"message" example:"Only 2 of Ceramic Mug available"`
} // @name NoticeResponse

// CartResponse is the cart state returned by every cart endpoint.
//
// @Description Cart lines with derived totals
type CartResponse struct {
	// CartID is the guest session the cart belongs to. Empty for account carts.
	CartID   string             `json:"cartId,omitempty" example:"3f1e2d4c-5b6a-4798-8a9b-0c1d2e3f4a5b"`
	Lines    []cart.Line        `json:"lines"`
	Totals   cart.Totals        `json:"totals"`
	Pricing  cart.Pricing       `json:"pricing"`
	Checkout model.CheckoutInfo `json:"checkout"`
	Notice   *NoticeResponse    `json:"notice,omitempty"`
	// Saved is false when the change was applied but could not be stored.
	Saved bool `json:"saved"`
	// Discarded counts stored lines dropped because they could not be read.
	Discarded int `json:"discarded,omitempty"`
} // @name CartResponse

// PageResponse wraps a page of a listing.
//
// @Description Paginated listing
type PageResponse struct {
	Items interface{} `json:"items" swaggertype:"array,object"`
	Total int64       `json:"total" example:"42"`
	Limit int         `json:"limit" example:"20"`
	Skip  int         `json:"skip" example:"0"`
} // @name PageResponse

// WishlistResponse lists the products a user saved.
//
// @Description Saved products
type WishlistResponse struct {
	Products []*model.Product `json:"products"`
} // @name WishlistResponse
