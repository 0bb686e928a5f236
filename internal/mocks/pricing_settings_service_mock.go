// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPricingSettingsService struct {
	mock.Mock
}

func NewMockPricingSettingsService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPricingSettingsService {
	m := &MockPricingSettingsService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPricingSettingsService) Current(ctx context.Context) cart.Pricing {
	args := m.Called(ctx)
	return args.Get(0).(cart.Pricing)
}

func (m *MockPricingSettingsService) Active(ctx context.Context) (cart.Pricing, error) {
	args := m.Called(ctx)
	return args.Get(0).(cart.Pricing), args.Error(1)
}

func (m *MockPricingSettingsService) GetActive(ctx context.Context) (*repository.PricingSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingSettings), args.Error(1)
}

func (m *MockPricingSettingsService) Create(ctx context.Context, p cart.Pricing, createdBy string) (*repository.PricingSettings, error) {
	args := m.Called(ctx, p, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingSettings), args.Error(1)
}

func (m *MockPricingSettingsService) Update(ctx context.Context, id primitive.ObjectID, p cart.Pricing, updatedBy string) (*repository.PricingSettings, error) {
	args := m.Called(ctx, id, p, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PricingSettings), args.Error(1)
}

func (m *MockPricingSettingsService) List(ctx context.Context, limit int) ([]repository.PricingSettings, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PricingSettings), args.Error(1)
}

func (m *MockPricingSettingsService) Stop() {
	m.Called()
}
