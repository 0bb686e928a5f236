// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCartService struct {
	mock.Mock
}

func NewMockCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCartService {
	m := &MockCartService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCartService) view(args mock.Arguments) (*service.CartView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context, owner model.CartOwner) (*service.CartView, error) {
	return m.view(m.Called(ctx, owner))
}

func (m *MockCartService) AddItem(ctx context.Context, owner model.CartOwner, productID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, owner, productID))
}

func (m *MockCartService) UpdateItem(ctx context.Context, owner model.CartOwner, productID string, quantity int) (*service.CartView, error) {
	return m.view(m.Called(ctx, owner, productID, quantity))
}

func (m *MockCartService) RemoveItem(ctx context.Context, owner model.CartOwner, productID string) (*service.CartView, error) {
	return m.view(m.Called(ctx, owner, productID))
}

func (m *MockCartService) Clear(ctx context.Context, owner model.CartOwner) (*service.CartView, error) {
	return m.view(m.Called(ctx, owner))
}

func (m *MockCartService) SetCheckoutInfo(ctx context.Context, owner model.CartOwner, info model.CheckoutInfo) (*service.CartView, error) {
	return m.view(m.Called(ctx, owner, info))
}

func (m *MockCartService) Merge(ctx context.Context, guest, account model.CartOwner) (*service.CartView, error) {
	return m.view(m.Called(ctx, guest, account))
}

func (m *MockCartService) Discard(ctx context.Context, owner model.CartOwner) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}
