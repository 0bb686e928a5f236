// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingSettingsRepositoryInterface defines the interface for pricing settings repository operations.
type PricingSettingsRepositoryInterface interface {
	GetActive(ctx context.Context) (*PricingSettings, error)
	Create(ctx context.Context, p cart.Pricing, createdBy string) (*PricingSettings, error)
	Update(ctx context.Context, id primitive.ObjectID, p cart.Pricing, updatedBy string) (*PricingSettings, error)
	List(ctx context.Context, limit int) ([]PricingSettings, error)
}

// CartStoreInterface defines the operations of a cart persistence backend.
type CartStoreInterface interface {
	Load(ctx context.Context, owner string) (*StoredCart, error)
	Save(ctx context.Context, owner string, state *StoredCart) error
	Delete(ctx context.Context, owner string) error
}

// ActivityRepositoryInterface defines the operations on the activity journal.
type ActivityRepositoryInterface interface {
	Append(ctx context.Context, entries ...*model.LogEntry) error
	Find(ctx context.Context, f model.ActivityFilter) ([]*model.LogEntry, error)
	Count(ctx context.Context, f model.ActivityFilter) (int64, error)
}
