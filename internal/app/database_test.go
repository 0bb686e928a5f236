//go:build !integration

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/mocks"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestInitializeDefaultPricing(t *testing.T) {
	defaults := cart.Pricing{TaxRate: 0.2, FlatShippingCost: 5, FreeShippingThreshold: 60}

	tests := []struct {
		name      string
		setupMock func(*mocks.MockPricingSettingsRepositoryInterface)
		wantError bool
	}{
		{
			name: "no active settings creates defaults",
			setupMock: func(m *mocks.MockPricingSettingsRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				m.On("Create", mock.Anything, defaults, "system").Return(&repository.PricingSettings{
					ID:     primitive.NewObjectID(),
					Active: true,
				}, nil).Once()
			},
		},
		{
			name: "active settings skip creation",
			setupMock: func(m *mocks.MockPricingSettingsRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(&repository.PricingSettings{
					ID:      primitive.NewObjectID(),
					TaxRate: 0.08,
					Active:  true,
				}, nil).Once()
			},
		},
		{
			name: "get active error",
			setupMock: func(m *mocks.MockPricingSettingsRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name: "create error",
			setupMock: func(m *mocks.MockPricingSettingsRepositoryInterface) {
				m.On("GetActive", mock.Anything).Return(nil, nil).Once()
				m.On("Create", mock.Anything, defaults, "system").Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockPricingSettingsRepositoryInterface)
			mockRepo.Test(t)
			tt.setupMock(mockRepo)

			err := initializeDefaultPricing(mockRepo, defaults)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestIsBackendHealthy(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"no documents", mongo.ErrNoDocuments, true},
		{"wrapped no documents", fmt.Errorf("find: %w", mongo.ErrNoDocuments), true},
		{"insufficient stock", repository.ErrInsufficientStock, true},
		{"redis miss", redis.Nil, true},
		{"duplicate key", mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}, true},
		{"connection error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isBackendHealthy(tt.err))
		})
	}
}

func TestNewCircuitBreaker(t *testing.T) {
	cb := newCircuitBreaker(config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 1,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Minute,
	}, "mongodb_products")

	assert.Equal(t, "mongodb_products", cb.Name())

	// A missing document is an answer, not an outage.
	_ = cb.Execute(context.Background(), func() error { return mongo.ErrNoDocuments })
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())

	_ = cb.Execute(context.Background(), func() error { return errors.New("connection refused") })
	assert.Equal(t, circuitbreaker.StateOpen, cb.State())
}

func TestInitializeDatabase_Disabled(t *testing.T) {
	assert.Nil(t, InitializeDatabase(config.Config{}))
}

func TestInitializeRedis_Disabled(t *testing.T) {
	assert.Nil(t, initializeRedis(config.RedisConfig{Enabled: false}))
}
