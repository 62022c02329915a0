package models

// CartItem is one line in a shopping cart. Line identity is the
// (ProductID, SelectedPackage) pair: adding a matching pair merges into the
// existing line instead of appending a duplicate.
type CartItem struct {
	ProductID          string  `json:"id"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	Image              string  `json:"image"`
	SelectedPackage    string  `json:"selectedPackage,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
	Material           string  `json:"material,omitempty"`
}

// EffectivePrice is the unit price after the line's discount.
func (i *CartItem) EffectivePrice() float64 {
	if i.DiscountPercentage > 0 {
		return i.Price * (1 - i.DiscountPercentage/100)
	}
	return i.Price
}

// LineTotal is the effective price times the quantity.
func (i *CartItem) LineTotal() float64 {
	return i.EffectivePrice() * float64(i.Quantity)
}
