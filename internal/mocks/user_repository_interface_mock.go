// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepositoryInterface struct {
	mock.Mock
}

func NewMockUserRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepositoryInterface {
	m := &MockUserRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepositoryInterface) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepositoryInterface) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepositoryInterface) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	return m.user(m.Called(ctx, login))
}

func (m *MockUserRepositoryInterface) UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, profile model.CustomerProfile) (*model.User, error) {
	return m.user(m.Called(ctx, id, name, profile))
}

func (m *MockUserRepositoryInterface) RecordLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepositoryInterface) Count(ctx context.Context, activeOnly bool) (int64, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}
