package checkout

import (
	"math"

	"midnightgrove/cart"
)

// Order pricing policy. Amounts are USD dollars until the final conversion
// to cents.
const (
	FreeShippingThreshold = 35.00
	FlatShippingRate      = 4.99
	TaxRate               = 0.08
)

// Totals is the charged breakdown of an order.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals derives the order totals from cart items. Shipping is free at
// or above the threshold; tax is a flat rate on the subtotal.
func ComputeTotals(items []cart.CartItem) Totals {
	var subtotal float64
	for _, line := range items {
		subtotal += line.Price * float64(line.Quantity)
	}

	shipping := FlatShippingRate
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}

	tax := Round2(subtotal * TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// ToCents converts a dollar amount to integer cents, rounding half away from
// zero. Every amount that leaves the process is rounded exactly once: each
// line item's unit amount, and the final charge total. The hosted checkout
// page sums per-line cents and can therefore differ from the PaymentIntent
// total by a cent for the same cart; the PaymentIntent total is the
// authoritative charge.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Round2 rounds a dollar amount to whole cents, half away from zero.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
