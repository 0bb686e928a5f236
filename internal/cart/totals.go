package cart

import "github.com/shopspring/decimal"

// Pricing holds the rates applied when deriving totals.
type Pricing struct {
	TaxRate               float64 `json:"taxRate" bson:"tax_rate"`
	FlatShippingCost      float64 `json:"flatShippingCost" bson:"flat_shipping_cost"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold" bson:"free_shipping_threshold"`
}

// DefaultPricing returns the storefront reference pricing: 8% tax, 10.00
// flat shipping, free shipping from a subtotal of 150.00.
func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0.08,
		FlatShippingCost:      10.0,
		FreeShippingThreshold: 150.0,
	}
}

// Totals are derived from the lines on every read and never stored on the cart.
type Totals struct {
	TotalItemCount           int     `json:"totalItemCount" bson:"total_item_count"`
	Subtotal                 float64 `json:"subtotal" bson:"subtotal"`
	Tax                      float64 `json:"tax" bson:"tax"`
	ShippingCost             float64 `json:"shippingCost" bson:"shipping_cost"`
	GrandTotal               float64 `json:"grandTotal" bson:"grand_total"`
	QualifiesForFreeShipping bool    `json:"qualifiesForFreeShipping" bson:"qualifies_for_free_shipping"`
}

// Derive computes the totals of lines under p.
//
// The arithmetic runs on decimals so that values such as 149.99 + 0.01 land
// exactly on the free-shipping threshold. An empty set of lines is never
// charged shipping.
func Derive(lines []Line, p Pricing) Totals {
	var count int
	subtotal := decimal.Zero
	for _, l := range lines {
		count += l.Quantity
		subtotal = subtotal.Add(decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	threshold := decimal.NewFromFloat(p.FreeShippingThreshold)
	free := subtotal.GreaterThanOrEqual(threshold)

	shipping := decimal.Zero
	if !free && count > 0 {
		shipping = decimal.NewFromFloat(p.FlatShippingCost)
	}
	tax := subtotal.Mul(decimal.NewFromFloat(p.TaxRate))
	grand := subtotal.Add(tax).Add(shipping)

	return Totals{
		TotalItemCount:           count,
		Subtotal:                 subtotal.InexactFloat64(),
		Tax:                      tax.InexactFloat64(),
		ShippingCost:             shipping.InexactFloat64(),
		GrandTotal:               grand.InexactFloat64(),
		QualifiesForFreeShipping: free,
	}
}

// Validate reports whether the pricing values can be applied.
func (p Pricing) Validate() error {
	switch {
	case p.TaxRate < 0 || p.TaxRate > 1:
		return ErrInvalidTaxRate
	case p.FlatShippingCost < 0:
		return ErrInvalidShippingCost
	case p.FreeShippingThreshold < 0:
		return ErrInvalidThreshold
	}
	return nil
}
