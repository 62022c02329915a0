// Package pricing holds the price and discount arithmetic shared by the
// cart, the quick-view popup and the checkout summary.
package pricing

import (
	"fmt"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

const (
	// FlatShippingFee is charged on every order below the threshold.
	FlatShippingFee = 5.0
	// FreeShippingThreshold waives the fee once the subtotal reaches it.
	FreeShippingThreshold = 50.0
)

// EffectivePrice returns the unit price after the discount percentage.
// A zero (or negative) discount leaves the price untouched.
func EffectivePrice(price, discountPercentage float64) float64 {
	if discountPercentage > 0 {
		return price * (1 - discountPercentage/100)
	}
	return price
}

// LineTotal is the discounted unit price times the line quantity.
// Quantity is clamped to a minimum of 1; a line that reaches zero should
// have been removed by the cart store, not priced.
func LineTotal(item models.CartItem) float64 {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	return EffectivePrice(item.Price, item.DiscountPercentage) * float64(qty)
}

// Subtotal sums the line totals of all items.
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}

// ShippingFee returns the flat fee, or 0 once the subtotal qualifies for
// free shipping.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// AmountToFreeShipping is how much more must be spent before shipping is
// waived (0 when already qualified). Drives the cart sidebar progress bar.
func AmountToFreeShipping(subtotal float64) float64 {
	remaining := FreeShippingThreshold - subtotal
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OrderTotal is subtotal + shipping - discount.
func OrderTotal(subtotal, shipping, discount float64) float64 {
	return subtotal + shipping - discount
}

// FormatAmount renders an amount for display with two decimals. No currency
// rounding happens anywhere else.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
