// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPricingSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockPricingSettingsRepositoryInterface) GetActive(ctx context.Context) (*repository.PricingSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingSettings), args.Error(1)
}

func (m *MockPricingSettingsRepositoryInterface) Create(ctx context.Context, p cart.Pricing, createdBy string) (*repository.PricingSettings, error) {
	args := m.Called(ctx, p, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingSettings), args.Error(1)
}

func (m *MockPricingSettingsRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, p cart.Pricing, updatedBy string) (*repository.PricingSettings, error) {
	args := m.Called(ctx, id, p, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingSettings), args.Error(1)
}

func (m *MockPricingSettingsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.PricingSettings, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PricingSettings), args.Error(1)
}
