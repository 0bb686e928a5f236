package dto

import (
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest authenticates a shopper or staff member.
//
// @Description Sign in with email or username
type LoginRequest struct {
	// Login is the account email or username.
	Login    string `json:"login" binding:"required,max=254" example:"ana@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse"`
} // @name LoginRequest

// RegisterRequest creates a customer account.
//
// @Description Create a customer account
type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email,max=254" example:"ana@example.com"`
	Username       string `json:"username" binding:"required,username" example:"ana.lima"`
	Password       string `json:"password" binding:"required,min=8,max=72" example:"correct-horse"`
	Name           string `json:"name,omitempty" binding:"max=120" example:"Ana Lima"`
	MarketingOptIn bool   `json:"marketingOptIn,omitempty"`
} // @name RegisterRequest

// ProfileRequest edits the saved customer details. Omitted fields keep their
// stored value.
//
// @Description Update the saved customer details
type ProfileRequest struct {
	Name             *string        `json:"name,omitempty" binding:"omitempty,max=120"`
	Phone            *string        `json:"phone,omitempty" binding:"omitempty,max=32"`
	DefaultShipping  *model.Address `json:"defaultShipping,omitempty"`
	PreferredPayment *string        `json:"preferredPayment,omitempty" binding:"omitempty,oneof=card paypal cod"`
	MarketingOptIn   *bool          `json:"marketingOptIn,omitempty"`
} // @name ProfileRequest

// Validate checks that the request changes something.
func (r *ProfileRequest) Validate() error {
	if r.Name == nil && r.Phone == nil && r.DefaultShipping == nil && r.PreferredPayment == nil && r.MarketingOptIn == nil {
		return ErrEmptyProfile
	}
	return nil
}

// TokenPair is a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims identify the account behind an access token.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name,omitempty"`
	Roles  []string           `json:"roles"`
}

// AccountResponse is the public view of an account.
//
// @Description Account details
type AccountResponse struct {
	ID          string                `json:"id" example:"665f1c2e8a4b2c0012345678"`
	Email       string                `json:"email" example:"ana@example.com"`
	Username    string                `json:"username" example:"ana.lima"`
	Name        string                `json:"name,omitempty" example:"Ana Lima"`
	Profile     model.CustomerProfile `json:"profile"`
	LastLoginAt *time.Time            `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
} // @name AccountResponse

// NewAccountResponse builds the public view of user.
func NewAccountResponse(user *model.User) AccountResponse {
	return AccountResponse{
		ID:          user.ID.Hex(),
		Email:       user.Email,
		Username:    user.Username,
		Name:        user.Name,
		Profile:     user.Profile,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

// AuthResponse is returned by login and register.
//
// @Description Tokens and the signed-in account
type AuthResponse struct {
	AccessToken  string          `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string          `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn    int64           `json:"expires_in" example:"900"`
	Account      AccountResponse `json:"account"`
	// MergedCart is set when a guest cart was merged into the account cart on login.
	MergedCart *CartResponse `json:"mergedCart,omitempty"`
} // @name AuthResponse
