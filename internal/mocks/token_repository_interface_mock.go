// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockTokenRepositoryInterface struct {
	mock.Mock
}

func NewMockTokenRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenRepositoryInterface {
	m := &MockTokenRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTokenRepositoryInterface) Store(ctx context.Context, raw string, userID primitive.ObjectID, tokenType model.TokenType, expiresAt time.Time) error {
	args := m.Called(ctx, raw, userID, tokenType, expiresAt)
	return args.Error(0)
}

func (m *MockTokenRepositoryInterface) ConsumeRefresh(ctx context.Context, raw string) (*model.Token, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockTokenRepositoryInterface) IsRevoked(ctx context.Context, raw string) (bool, error) {
	args := m.Called(ctx, raw)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepositoryInterface) DeleteForUser(ctx context.Context, userID primitive.ObjectID, tokenType model.TokenType) error {
	args := m.Called(ctx, userID, tokenType)
	return args.Error(0)
}
