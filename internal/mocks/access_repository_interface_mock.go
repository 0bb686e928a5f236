// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockAccessRepositoryInterface struct {
	mock.Mock
}

func NewMockAccessRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccessRepositoryInterface {
	m := &MockAccessRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccessRepositoryInterface) EnsurePermission(ctx context.Context, permission *model.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockAccessRepositoryInterface) EnsureRole(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockAccessRepositoryInterface) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockAccessRepositoryInterface) FindRolesByIDs(ctx context.Context, ids []string) ([]*model.Role, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *MockAccessRepositoryInterface) FindPermissionsByIDs(ctx context.Context, ids []string) ([]*model.Permission, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Permission), args.Error(1)
}
