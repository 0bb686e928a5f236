// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockAuthService struct {
	mock.Mock
}

func NewMockAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthService) tokenAndUser(args mock.Arguments) (*dto.TokenPair, *model.User, error) {
	var pair *dto.TokenPair
	if v := args.Get(0); v != nil {
		pair = v.(*dto.TokenPair)
	}
	var user *model.User
	if v := args.Get(1); v != nil {
		user = v.(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, login, password string) (*dto.TokenPair, *model.User, error) {
	return m.tokenAndUser(m.Called(ctx, login, password))
}

func (m *MockAuthService) Register(ctx context.Context, reg service.Registration) (*dto.TokenPair, *model.User, error) {
	return m.tokenAndUser(m.Called(ctx, reg))
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, accessToken string) (*dto.Claims, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) Account(ctx context.Context, userID primitive.ObjectID) (*model.User, error) {
	return m.user(m.Called(ctx, userID))
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, upd service.ProfileUpdate) (*model.User, error) {
	return m.user(m.Called(ctx, userID, upd))
}

func (m *MockAuthService) CheckoutDefaults(ctx context.Context, userID string) (model.CheckoutInfo, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.CheckoutInfo), args.Error(1)
}
