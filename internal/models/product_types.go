package models

import (
	"time"
)

// Product is the model for the 'products' table.
// Categories, ProductTypes and Images are stored as JSON columns and
// populated manually after scanning.
type Product struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	ImageURL    string  `json:"image_url" db:"image_url"`

	// --- Classification ---
	Categories   []string `json:"categories,omitempty" db:"-"`
	ProductTypes []string `json:"product_types,omitempty" db:"-"`
	Material     *string  `json:"material" db:"material"` // Pointer for NULL

	// --- Availability & Pricing ---
	InStock            bool    `json:"in_stock" db:"in_stock"`
	DiscountPercentage float64 `json:"discount_percentage" db:"discount_percentage"`

	// --- Media ---
	Images []string `json:"images,omitempty" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasCategory reports whether the product's category-name set contains name.
func (p *Product) HasCategory(name string) bool {
	for _, c := range p.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// EffectivePrice is the unit price after the discount percentage is applied.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPercentage > 0 {
		return p.Price * (1 - p.DiscountPercentage/100)
	}
	return p.Price
}
