// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockActivityService struct {
	mock.Mock
}

func NewMockActivityService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockActivityService {
	m := &MockActivityService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockActivityService) Record(ctx context.Context, entries ...*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockActivityService) Activity(ctx context.Context, f model.ActivityFilter) (*service.ActivityPage, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ActivityPage), args.Error(1)
}
