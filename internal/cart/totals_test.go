package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestDerive_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *Cart)
		want  Totals
	}{
		{
			name: "single product under threshold",
			build: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 20), 3)
			},
			want: Totals{TotalItemCount: 1, Subtotal: 20, Tax: 1.6, ShippingCost: 10, GrandTotal: 31.6},
		},
		{
			name: "subtotal of 200 ships free",
			build: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 100), 5)
				_, _ = c.UpdateQuantity("a", 2, 5)
			},
			want: Totals{TotalItemCount: 2, Subtotal: 200, Tax: 16, ShippingCost: 0, GrandTotal: 216, QualifiesForFreeShipping: true},
		},
		{
			name: "exactly at threshold qualifies",
			build: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 75), 5)
				_, _ = c.Add("a", snap("a", 75), 5)
			},
			want: Totals{TotalItemCount: 2, Subtotal: 150, Tax: 12, ShippingCost: 0, GrandTotal: 162, QualifiesForFreeShipping: true},
		},
		{
			name: "one cent under threshold pays shipping",
			build: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 149.99), 5)
			},
			want: Totals{TotalItemCount: 1, Subtotal: 149.99, Tax: 11.9992, ShippingCost: 10, GrandTotal: 171.9892},
		},
		{
			name: "decimal prices summing to threshold qualify",
			build: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 149.99), 5)
				_, _ = c.Add("b", snap("b", 0.01), 5)
			},
			want: Totals{TotalItemCount: 2, Subtotal: 150, Tax: 12, ShippingCost: 0, GrandTotal: 162, QualifiesForFreeShipping: true},
		},
		{
			name: "removing the only line zeroes everything",
			build: func(c *Cart) {
				_, _ = c.Add("a", snap("a", 20), 3)
				c.Remove("a")
			},
			want: Totals{},
		},
		{
			name:  "empty cart",
			build: func(c *Cart) {},
			want:  Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.build(c)

			got := c.Totals(DefaultPricing())

			assert.Equal(t, tt.want.TotalItemCount, got.TotalItemCount)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, delta)
			assert.InDelta(t, tt.want.Tax, got.Tax, delta)
			assert.InDelta(t, tt.want.ShippingCost, got.ShippingCost, delta)
			assert.InDelta(t, tt.want.GrandTotal, got.GrandTotal, delta)
			assert.Equal(t, tt.want.QualifiesForFreeShipping, got.QualifiesForFreeShipping)
		})
	}
}

func TestDerive_ThreeAddsThenRejectedFourth(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		_, err := c.Add("a", snap("a", 20), 3)
		require.NoError(t, err)
	}
	notice, err := c.Add("a", snap("a", 20), 3)

	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, NoticeOutOfStock, notice.Kind)
	line, _ := c.Line("a")
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, 3, c.Totals(DefaultPricing()).TotalItemCount)
}

func TestDerive_SubtotalAndTaxMatchLines(t *testing.T) {
	lines := []Line{
		{ProductID: "a", UnitPrice: 12.5, Quantity: 3, StockCeiling: 5},
		{ProductID: "b", UnitPrice: 0.99, Quantity: 7, StockCeiling: 10},
		{ProductID: "c", UnitPrice: 45, Quantity: 1, StockCeiling: 1},
	}
	var want float64
	for _, l := range lines {
		want += l.UnitPrice * float64(l.Quantity)
	}

	got := Derive(lines, DefaultPricing())

	assert.InDelta(t, want, got.Subtotal, 1e-6)
	assert.InDelta(t, got.Subtotal*0.08, got.Tax, 1e-6)
	assert.InDelta(t, got.Subtotal+got.Tax+got.ShippingCost, got.GrandTotal, 1e-6)
	assert.Equal(t, 11, got.TotalItemCount)
}

func TestDerive_CustomPricing(t *testing.T) {
	lines := []Line{{ProductID: "a", UnitPrice: 50, Quantity: 2, StockCeiling: 2}}
	p := Pricing{TaxRate: 0.2, FlatShippingCost: 5, FreeShippingThreshold: 100}

	got := Derive(lines, p)

	assert.True(t, got.QualifiesForFreeShipping)
	assert.InDelta(t, 20.0, got.Tax, delta)
	assert.InDelta(t, 120.0, got.GrandTotal, delta)
}

func TestPricing_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pricing Pricing
		wantErr error
	}{
		{name: "defaults are valid", pricing: DefaultPricing()},
		{name: "zero values are valid", pricing: Pricing{}},
		{name: "negative tax", pricing: Pricing{TaxRate: -0.1}, wantErr: ErrInvalidTaxRate},
		{name: "tax above one", pricing: Pricing{TaxRate: 1.5}, wantErr: ErrInvalidTaxRate},
		{name: "negative shipping", pricing: Pricing{FlatShippingCost: -1}, wantErr: ErrInvalidShippingCost},
		{name: "negative threshold", pricing: Pricing{FreeShippingThreshold: -1}, wantErr: ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pricing.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
