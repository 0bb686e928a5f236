package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles seeded at startup.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// TokenType tells stored refresh tokens apart from revoked access tokens.
type TokenType string

const (
	TokenRefresh TokenType = "refresh"
	TokenRevoked TokenType = "revoked"
)

// CustomerProfile holds the details a shopper saves on their account.
// They prefill the checkout info of the account cart.
type CustomerProfile struct {
	Phone            string        `bson:"phone,omitempty" json:"phone,omitempty"`
	DefaultShipping  *Address      `bson:"default_shipping,omitempty" json:"defaultShipping,omitempty"`
	PreferredPayment PaymentMethod `bson:"preferred_payment,omitempty" json:"preferredPayment,omitempty"`
	MarketingOptIn   bool          `bson:"marketing_opt_in" json:"marketingOptIn"`
}

// CheckoutDefaults returns the checkout info the profile prefills. Unknown
// payment methods are left out.
func (p CustomerProfile) CheckoutDefaults() CheckoutInfo {
	var info CheckoutInfo
	if p.DefaultShipping != nil {
		addr := *p.DefaultShipping
		info.Shipping = &addr
	}
	if p.PreferredPayment.Valid() {
		info.PaymentMethod = p.PreferredPayment
	}
	return info
}

// User is a registered account. Shoppers hold the customer role, store staff
// hold roles that grant catalog and order permissions.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Roles        []string           `bson:"roles" json:"roles"` // role IDs
	Profile      CustomerProfile    `bson:"profile" json:"profile"`
	Active       bool               `bson:"active" json:"active"`
	LastLoginAt  *time.Time         `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// NormalizeEmail trims and lower-cases an address so that lookups match
// however the shopper typed it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Role groups permissions.
type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Permissions []string           `bson:"permissions" json:"permissions"` // permission IDs
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Permission allows one action on one store resource, e.g. orders:write.
type Permission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Resource    string             `bson:"resource" json:"resource"`
	Action      string             `bson:"action" json:"action"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Active      bool               `bson:"active" json:"active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Key returns the permission as "resource:action".
func (p Permission) Key() string {
	return p.Resource + ":" + p.Action
}

// ParsePermissionKey splits a "resource:action" key.
func ParsePermissionKey(key string) (resource, action string, ok bool) {
	resource, action, ok = strings.Cut(key, ":")
	if !ok || resource == "" || action == "" {
		return "", "", false
	}
	return resource, action, true
}

// Token is a stored refresh token or a revoked access token. Only a digest of
// the token string is kept.
type Token struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Digest    string             `bson:"digest" json:"-"`
	Type      TokenType          `bson:"type" json:"type"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
