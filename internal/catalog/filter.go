// Package catalog implements the product filtering, sorting and pagination
// engine behind the category browsing pages.
package catalog

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

// PageSize is the fixed number of products per listing page.
const PageSize = 8

// Sort keys accepted by the engine.
const (
	SortDefault   = "default"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
	SortNewest    = "newest"
)

// Availability options.
const (
	InStock    = "In Stock"
	OutOfStock = "Out of Stock"
)

// NewProductType is a pseudo-type: membership is derived from the creation
// timestamp (within NewProductWindow of now), never stored on the product.
const NewProductType = "New Product"

// NewProductWindow is how long a product counts as new.
const NewProductWindow = 30 * 24 * time.Hour

// defaultProductTypes is offered when no product in the category carries a
// type tag.
var defaultProductTypes = []string{"Best Seller", NewProductType, "Special Product"}

// PriceRange is an inclusive [Min, Max] price band.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterState is the committed filter/sort specification the engine runs
// against. Slider values being dragged live in Context until applied.
type FilterState struct {
	PriceRange           PriceRange `json:"price_range"`
	SelectedMaterials    []string   `json:"selected_materials"`
	SelectedProductTypes []string   `json:"selected_product_types"`
	SelectedAvailability []string   `json:"selected_availability"`
	SortBy               string     `json:"sort_by"`
	Page                 int        `json:"page"` // 1-based
}

// Apply runs the full filter pipeline and sort over products and returns
// the visible ordered subset (pre-pagination). The input slice is never
// mutated.
func Apply(products []models.Product, state FilterState) []models.Product {
	return applyAt(products, state, time.Now())
}

func applyAt(products []models.Product, state FilterState, now time.Time) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if p.Price < state.PriceRange.Min || p.Price > state.PriceRange.Max {
			continue
		}
		if !materialMatches(p, state.SelectedMaterials) {
			continue
		}
		if !typeMatches(p, state.SelectedProductTypes, now) {
			continue
		}
		if !availabilityMatches(p, state.SelectedAvailability) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, state.SortBy)
	return filtered
}

func materialMatches(p models.Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	if p.Material == nil {
		return false
	}
	for _, m := range selected {
		if *p.Material == m {
			return true
		}
	}
	return false
}

func typeMatches(p models.Product, selected []string, now time.Time) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		if want == NewProductType {
			if IsNewProduct(p.CreatedAt, now) {
				return true
			}
			continue
		}
		for _, have := range p.ProductTypes {
			if have == want {
				return true
			}
		}
	}
	return false
}

func availabilityMatches(p models.Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	wantIn := contains(selected, InStock)
	wantOut := contains(selected, OutOfStock)
	switch {
	case wantIn && wantOut:
		return true // both selected: show all
	case wantIn:
		return p.InStock
	case wantOut:
		return !p.InStock
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// IsNewProduct reports whether a creation timestamp falls inside the
// new-product window.
func IsNewProduct(createdAt, now time.Time) bool {
	return createdAt.After(now.Add(-NewProductWindow))
}

// sortProducts orders the slice in place by the given key. Sorts are
// stable; equal elements keep their input order, and an unknown or
// "default" key leaves the input order untouched.
func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// Paginate slices an already filtered-and-sorted list down to one page.
// Page numbers are 1-based; anything out of range yields an empty slice.
func Paginate(products []models.Product, page int) []models.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + PageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// TotalPages for a result set of n products.
func TotalPages(n int) int {
	if n == 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// MaxPrice derives the slider ceiling for a product set: the highest price
// rounded up to the nearest 10. Empty sets fall back to 100.
func MaxPrice(products []models.Product) float64 {
	if len(products) == 0 {
		return 100
	}
	highest := products[0].Price
	for _, p := range products[1:] {
		if p.Price > highest {
			highest = p.Price
		}
	}
	return math.Ceil(math.Ceil(highest)/10) * 10
}

// AvailableMaterials collects the distinct non-empty materials of a product
// set, sorted.
func AvailableMaterials(products []models.Product) []string {
	seen := map[string]bool{}
	var materials []string
	for _, p := range products {
		if p.Material == nil {
			continue
		}
		m := strings.TrimSpace(*p.Material)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		materials = append(materials, m)
	}
	sort.Strings(materials)
	return materials
}

// AvailableProductTypes collects the distinct non-empty type tags of a
// product set, sorted. When no product carries a tag the default set is
// offered so the filter panel is never empty.
func AvailableProductTypes(products []models.Product) []string {
	seen := map[string]bool{}
	var types []string
	for _, p := range products {
		for _, t := range p.ProductTypes {
			t = strings.TrimSpace(t)
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			types = append(types, t)
		}
	}
	if len(types) == 0 {
		return append([]string(nil), defaultProductTypes...)
	}
	sort.Strings(types)
	return types
}
