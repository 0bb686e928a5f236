// Package model defines the core domain entities for the storefront service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Stock is the quantity currently purchasable and
// is the stock ceiling applied to cart lines.
//
// @Description Catalog product
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" example:"Ceramic Mug"`
	Slug        string             `bson:"slug" json:"slug" example:"ceramic-mug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price" example:"19.9"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty" example:"kitchen"`
	Stock       int                `bson:"stock" json:"stock" example:"12"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Purchasable returns the stock ceiling for cart operations.
// Inactive products cannot be bought.
func (p *Product) Purchasable() int {
	if p == nil || !p.Active || p.Stock < 0 {
		return 0
	}
	return p.Stock
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category   string
	Search     string
	OnlyActive bool
	Limit      int
	Skip       int
}

// Category groups products for navigation.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" example:"Kitchen"`
	Slug        string             `bson:"slug" json:"slug" example:"kitchen"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
