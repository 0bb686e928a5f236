package dto

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

func TestAuthRequestBinding(t *testing.T) {
	RegisterValidators()

	tests := []struct {
		name        string
		request     interface{}
		wantDetails map[string]string
	}{
		{
			name:    "valid registration",
			request: &RegisterRequest{Email: "ana@example.com", Username: "ana.lima", Password: "correct-horse"},
		},
		{
			name:    "username with digits and dashes",
			request: &RegisterRequest{Email: "bo@example.com", Username: "bo-42_x", Password: "correct-horse"},
		},
		{
			name:    "uppercase username",
			request: &RegisterRequest{Email: "ana@example.com", Username: "AnaLima", Password: "correct-horse"},
			wantDetails: map[string]string{
				"username": "must be 3-30 lowercase letters, digits, dots, dashes or underscores",
			},
		},
		{
			name:    "short password and bad email",
			request: &RegisterRequest{Email: "ana", Username: "ana", Password: "short"},
			wantDetails: map[string]string{
				"email":    "must be a valid email",
				"password": "must be at least 8",
			},
		},
		{
			name:        "login needs a password",
			request:     &LoginRequest{Login: "ana.lima"},
			wantDetails: map[string]string{"password": "is required"},
		},
		{
			name:        "unknown preferred payment",
			request:     &ProfileRequest{PreferredPayment: ptr("cheque")},
			wantDetails: map[string]string{"preferredPayment": "must be one of: card paypal cod"},
		},
		{
			name: "incomplete default shipping",
			request: &ProfileRequest{DefaultShipping: &model.Address{
				FullName: "Ana Lima", Line1: "Rua Augusta 10", City: "Lisboa", Country: "PT",
			}},
			wantDetails: map[string]string{"defaultShipping.postalCode": "is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.request)
			if tt.wantDetails == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantDetails, ValidationDetails(err))
		})
	}
}

func TestProfileRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ProfileRequest{}).Validate(), ErrEmptyProfile)
	assert.NoError(t, (&ProfileRequest{MarketingOptIn: ptr(false)}).Validate())
	assert.NoError(t, (&ProfileRequest{Phone: ptr("")}).Validate())
}

func TestNewAccountResponse(t *testing.T) {
	id := primitive.NewObjectID()
	lastLogin := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	user := &model.User{
		ID:           id,
		Email:        "ana@example.com",
		Username:     "ana.lima",
		PasswordHash: "$2a$10$secret",
		Name:         "Ana Lima",
		Roles:        []string{primitive.NewObjectID().Hex()},
		Profile:      model.CustomerProfile{PreferredPayment: model.PaymentCard},
		LastLoginAt:  &lastLogin,
	}

	resp := NewAccountResponse(user)
	assert.Equal(t, id.Hex(), resp.ID)
	assert.Equal(t, "ana.lima", resp.Username)
	assert.Equal(t, model.PaymentCard, resp.Profile.PreferredPayment)
	assert.Equal(t, &lastLogin, resp.LastLoginAt)
}
