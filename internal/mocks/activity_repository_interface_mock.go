// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockActivityRepositoryInterface struct {
	mock.Mock
}

func NewMockActivityRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockActivityRepositoryInterface {
	m := &MockActivityRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockActivityRepositoryInterface) Append(ctx context.Context, entries ...*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockActivityRepositoryInterface) Find(ctx context.Context, f model.ActivityFilter) ([]*model.LogEntry, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.LogEntry), args.Error(1)
}

func (m *MockActivityRepositoryInterface) Count(ctx context.Context, f model.ActivityFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}
