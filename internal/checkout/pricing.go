// Package checkout derives order totals from cart contents. Pure functions
// only; the checkout flow itself lives with the order recorder.
package checkout

import (
	"codedrip/internal/cart"
	"codedrip/internal/catalog"
)

// Pricing policy. Orders over the threshold ship free; tax is a flat 8%
// applied to the subtotal and included in the total.
const (
	FreeShippingThreshold = 100.0
	FlatShippingFee       = 9.99
	TaxRate               = 0.08
)

// Totals is the price breakdown presented at checkout and recorded on the
// order.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices the items against a catalog snapshot. It is defined
// for every well-formed cart, including the empty one, which still pays the
// flat shipping fee.
func ComputeTotals(items []cart.LineItem, lookup catalog.PriceLookup) Totals {
	subtotal := cart.Subtotal(items, lookup)

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
