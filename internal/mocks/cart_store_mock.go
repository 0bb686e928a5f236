// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Load(ctx context.Context, owner string) (*repository.StoredCart, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoredCart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, owner string, state *repository.StoredCart) error {
	args := m.Called(ctx, owner, state)
	return args.Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, owner string) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}
