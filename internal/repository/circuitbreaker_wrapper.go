// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepositoryWithCircuitBreaker wraps a product repository with circuit
// breaker protection. Stock checks and reservations go through it on every cart
// mutation, so a failing database trips it quickly.
type ProductRepositoryWithCircuitBreaker struct {
	repo           ProductRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductRepositoryWithCircuitBreaker creates a new product repository wrapper with circuit breaker.
func NewProductRepositoryWithCircuitBreaker(repo ProductRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProductRepositoryWithCircuitBreaker {
	return &ProductRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Create(ctx context.Context, product *model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, product)
	})
}

// FindByID returns a product by ID with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.Product, error) {
		return r.repo.FindByID(ctx, id)
	})
}

// FindBySlug returns a product by slug with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (*model.Product, error) {
		return r.repo.FindBySlug(ctx, slug)
	})
}

// FindByIDs returns the products with the given IDs with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Product, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*model.Product, error) {
		return r.repo.FindByIDs(ctx, ids)
	})
}

// List returns a page of products with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) List(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*model.Product, error) {
		return r.repo.List(ctx, filter)
	})
}

// Count counts the products matching filter with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Count(ctx context.Context, filter model.ProductFilter) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, filter)
	})
}

// Update replaces a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Update(ctx context.Context, product *model.Product) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, product)
	})
}

// Delete removes a product with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// DecrementStock reserves stock with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.DecrementStock(ctx, id, quantity)
	})
}

// IncrementStock returns stock with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) IncrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.IncrementStock(ctx, id, quantity)
	})
}

// LowStock lists products running out with circuit breaker protection.
func (r *ProductRepositoryWithCircuitBreaker) LowStock(ctx context.Context, threshold, limit int) ([]*model.Product, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*model.Product, error) {
		return r.repo.LowStock(ctx, threshold, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ActivityRepositoryWithCircuitBreaker wraps the activity journal with circuit
// breaker protection. Entries written while the circuit is open are dropped
// rather than failing the request that produced them.
type ActivityRepositoryWithCircuitBreaker struct {
	repo           ActivityRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewActivityRepositoryWithCircuitBreaker creates a new activity repository wrapper with circuit breaker.
func NewActivityRepositoryWithCircuitBreaker(repo ActivityRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ActivityRepositoryWithCircuitBreaker {
	return &ActivityRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Append stores entries with circuit breaker protection.
func (r *ActivityRepositoryWithCircuitBreaker) Append(ctx context.Context, entries ...*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Append(ctx, entries...)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Find returns journal entries with circuit breaker protection.
func (r *ActivityRepositoryWithCircuitBreaker) Find(ctx context.Context, f model.ActivityFilter) ([]*model.LogEntry, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() ([]*model.LogEntry, error) {
		return r.repo.Find(ctx, f)
	})
}

// Count counts journal entries with circuit breaker protection.
func (r *ActivityRepositoryWithCircuitBreaker) Count(ctx context.Context, f model.ActivityFilter) (int64, error) {
	return circuitbreaker.Call(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, f)
	})
}

// PricingSettingsRepositoryWithCircuitBreaker wraps PricingSettingsRepository with circuit breaker protection.
type PricingSettingsRepositoryWithCircuitBreaker struct {
	repo           PricingSettingsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPricingSettingsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPricingSettingsRepositoryWithCircuitBreaker(repo PricingSettingsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *PricingSettingsRepositoryWithCircuitBreaker {
	return &PricingSettingsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active pricing settings with circuit breaker protection.
func (r *PricingSettingsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*PricingSettings, error) {
	var result *PricingSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil to use default pricing
		return nil, nil
	}
	return result, err
}

// Create stores new active pricing settings with circuit breaker protection.
func (r *PricingSettingsRepositoryWithCircuitBreaker) Create(ctx context.Context, p cart.Pricing, createdBy string) (*PricingSettings, error) {
	var result *PricingSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, p, createdBy)
		return cbErr
	})
	return result, err
}

// Update edits pricing settings with circuit breaker protection.
func (r *PricingSettingsRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, p cart.Pricing, updatedBy string) (*PricingSettings, error) {
	var result *PricingSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, p, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns pricing settings history with circuit breaker protection.
func (r *PricingSettingsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]PricingSettings, error) {
	var result []PricingSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PricingSettingsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// CartStoreWithCircuitBreaker wraps a cart store with circuit breaker protection.
// Unlike the logs wrapper it reports an open circuit to the caller: a cart
// cannot be safely mutated without its stored state.
type CartStoreWithCircuitBreaker struct {
	store          CartStoreInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartStoreWithCircuitBreaker creates a new cart store wrapper with circuit breaker.
func NewCartStoreWithCircuitBreaker(store CartStoreInterface, cb *circuitbreaker.CircuitBreaker) *CartStoreWithCircuitBreaker {
	return &CartStoreWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// Load returns the stored cart with circuit breaker protection.
func (r *CartStoreWithCircuitBreaker) Load(ctx context.Context, owner string) (*StoredCart, error) {
	var result *StoredCart
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.store.Load(ctx, owner)
		return cbErr
	})
	return result, err
}

// Save writes the cart with circuit breaker protection.
func (r *CartStoreWithCircuitBreaker) Save(ctx context.Context, owner string, state *StoredCart) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.store.Save(ctx, owner, state)
	})
}

// Delete removes the cart with circuit breaker protection.
func (r *CartStoreWithCircuitBreaker) Delete(ctx context.Context, owner string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.store.Delete(ctx, owner)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
