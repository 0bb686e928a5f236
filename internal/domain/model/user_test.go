package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerProfile_CheckoutDefaults(t *testing.T) {
	home := &Address{FullName: "Ana Lima", Line1: "Rua Augusta 10", City: "Lisboa", PostalCode: "1100-053", Country: "PT"}

	tests := []struct {
		name         string
		profile      CustomerProfile
		wantShipping bool
		wantPayment  PaymentMethod
		wantReady    bool
	}{
		{name: "empty profile", profile: CustomerProfile{}},
		{name: "address only", profile: CustomerProfile{DefaultShipping: home}, wantShipping: true},
		{name: "payment only", profile: CustomerProfile{PreferredPayment: PaymentPayPal}, wantPayment: PaymentPayPal},
		{
			name:         "complete profile",
			profile:      CustomerProfile{DefaultShipping: home, PreferredPayment: PaymentCashOnDelivery},
			wantShipping: true,
			wantPayment:  PaymentCashOnDelivery,
			wantReady:    true,
		},
		{
			name:         "unknown payment method is dropped",
			profile:      CustomerProfile{DefaultShipping: home, PreferredPayment: "cheque"},
			wantShipping: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.profile.CheckoutDefaults()
			assert.Equal(t, tt.wantShipping, info.Shipping != nil)
			assert.Equal(t, tt.wantPayment, info.PaymentMethod)
			assert.Equal(t, tt.wantReady, info.Ready())
		})
	}
}

func TestCustomerProfile_CheckoutDefaultsCopiesAddress(t *testing.T) {
	profile := CustomerProfile{DefaultShipping: &Address{City: "Porto"}}

	info := profile.CheckoutDefaults()
	require.NotNil(t, info.Shipping)
	info.Shipping.City = "Braga"

	assert.Equal(t, "Porto", profile.DefaultShipping.City)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestPermissionKey(t *testing.T) {
	p := Permission{Resource: "orders", Action: "write"}
	assert.Equal(t, "orders:write", p.Key())

	tests := []struct {
		key      string
		resource string
		action   string
		ok       bool
	}{
		{"orders:write", "orders", "write", true},
		{"pricing:write", "pricing", "write", true},
		{"orders", "", "", false},
		{":write", "", "", false},
		{"orders:", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resource, action, ok := ParsePermissionKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.resource, resource)
			assert.Equal(t, tt.action, action)
		})
	}
}
