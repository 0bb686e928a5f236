// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAccessService struct {
	mock.Mock
}

func NewMockAccessService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccessService {
	m := &MockAccessService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccessService) Allows(ctx context.Context, roleIDs []string, key string) (bool, error) {
	args := m.Called(ctx, roleIDs, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccessService) Stop() {
	m.Called()
}
