package service

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
)

// WishlistService manages the products a user saved for later.
type WishlistService interface {
	Get(ctx context.Context, userID string) (*model.Wishlist, []*model.Product, error)
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
}

// WishlistServiceImpl implements WishlistService.
type WishlistServiceImpl struct {
	repo  repository.WishlistRepositoryInterface
	stock StockSource
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepositoryInterface, stock StockSource) WishlistService {
	return &WishlistServiceImpl{
		repo:  repo,
		stock: stock,
	}
}

// Get returns the wishlist and the products it references that still exist.
func (s *WishlistServiceImpl) Get(ctx context.Context, userID string) (*model.Wishlist, []*model.Product, error) {
	if s.repo == nil {
		return nil, nil, ErrRepositoryNotConfigured
	}
	wishlist, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	products := make([]*model.Product, 0, len(wishlist.ProductIDs))
	for _, id := range wishlist.ProductIDs {
		product, err := s.stock.Product(ctx, id)
		if err != nil || !product.Active {
			continue
		}
		products = append(products, product)
	}
	return wishlist, products, nil
}

// Add saves productID. Unknown products are rejected.
func (s *WishlistServiceImpl) Add(ctx context.Context, userID, productID string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if _, err := s.stock.Product(ctx, productID); err != nil {
		return err
	}
	return s.repo.Add(ctx, userID, productID)
}

func (s *WishlistServiceImpl) Remove(ctx context.Context, userID, productID string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return s.repo.Remove(ctx, userID, productID)
}
