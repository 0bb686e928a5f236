package service

import (
	"context"
	"fmt"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
)

const (
	// LowStockThreshold is the stock level at which a product is reported as running out.
	LowStockThreshold = 5
	lowStockLimit     = 10
)

// DashboardService aggregates store statistics for administrators.
type DashboardService interface {
	Stats(ctx context.Context) (*model.DashboardStats, error)
}

// DashboardServiceImpl implements DashboardService.
type DashboardServiceImpl struct {
	products   repository.ProductRepositoryInterface
	categories repository.CategoryRepositoryInterface
	orders     repository.OrderRepositoryInterface
	users      repository.UserRepositoryInterface
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	products repository.ProductRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	users repository.UserRepositoryInterface,
) DashboardService {
	return &DashboardServiceImpl{
		products:   products,
		categories: categories,
		orders:     orders,
		users:      users,
	}
}

func (s *DashboardServiceImpl) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if s.products == nil || s.categories == nil || s.orders == nil || s.users == nil {
		return nil, ErrRepositoryNotConfigured
	}

	stats := &model.DashboardStats{}
	var err error

	if stats.Products, err = s.products.Count(ctx, model.ProductFilter{}); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if stats.ActiveProducts, err = s.products.Count(ctx, model.ProductFilter{OnlyActive: true}); err != nil {
		return nil, fmt.Errorf("count active products: %w", err)
	}
	if stats.Categories, err = s.categories.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.Users, err = s.users.Count(ctx, true); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.OrdersByStatus, err = s.orders.CountByStatus(ctx); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	for _, n := range stats.OrdersByStatus {
		stats.Orders += n
	}
	if stats.Revenue, err = s.orders.Revenue(ctx); err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	low, err := s.products.LowStock(ctx, LowStockThreshold, lowStockLimit)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	stats.LowStock = make([]model.Product, 0, len(low))
	for _, p := range low {
		stats.LowStock = append(stats.LowStock, *p)
	}
	return stats, nil
}
