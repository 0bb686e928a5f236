// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func NewMockOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderService {
	m := &MockOrderService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOrderService) order(args mock.Arguments) (*model.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) orders(args mock.Arguments) ([]*model.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *MockOrderService) Place(ctx context.Context, owner model.CartOwner, email string) (*model.Order, error) {
	return m.order(m.Called(ctx, owner, email))
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *MockOrderService) GetForOwner(ctx context.Context, id string, owner model.CartOwner) (*model.Order, error) {
	return m.order(m.Called(ctx, id, owner))
}

func (m *MockOrderService) ListMine(ctx context.Context, owner model.CartOwner, limit, skip int64) ([]*model.Order, error) {
	return m.orders(m.Called(ctx, owner, limit, skip))
}

func (m *MockOrderService) List(ctx context.Context, status model.OrderStatus, limit, skip int64) ([]*model.Order, error) {
	return m.orders(m.Called(ctx, status, limit, skip))
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id string, to model.OrderStatus, changedBy string) (*model.Order, error) {
	return m.order(m.Called(ctx, id, to, changedBy))
}

func (m *MockOrderService) Cancel(ctx context.Context, id string, owner model.CartOwner) (*model.Order, error) {
	return m.order(m.Called(ctx, id, owner))
}
