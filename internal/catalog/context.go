package catalog

import (
	"github.com/bazartoghar/storefront-golang/internal/models"
)

// Context is the per-session filter state holder behind a category listing.
// Slider values are provisional until ApplyPriceFilter commits them; every
// mutation that changes the visible list recomputes it synchronously and
// resets pagination, so there are no stale intermediate states.
type Context struct {
	category models.Category
	products []models.Product
	filtered []models.Product

	maxPrice     float64
	sliderValues PriceRange
	state        FilterState

	availableMaterials []string
	availableTypes     []string
}

// NewContext starts a context on a category and its product set, with the
// price range open, selections cleared and the default sort.
func NewContext(category models.Category, products []models.Product) *Context {
	ctx := &Context{}
	ctx.SetCategory(category, products)
	return ctx
}

// SetCategory switches the active category. The price range resets to
// [0, maxPrice], all selections clear and the page returns to 1.
func (c *Context) SetCategory(category models.Category, products []models.Product) {
	c.category = category
	c.products = products
	c.maxPrice = MaxPrice(products)
	c.availableMaterials = AvailableMaterials(products)
	c.availableTypes = AvailableProductTypes(products)

	c.sliderValues = PriceRange{Min: 0, Max: c.maxPrice}
	c.state = FilterState{
		PriceRange: c.sliderValues,
		SortBy:     SortDefault,
		Page:       1,
	}
	c.recompute()
}

// SetSliderValues records a provisional price range. Nothing recomputes
// until ApplyPriceFilter commits it.
func (c *Context) SetSliderValues(r PriceRange) {
	c.sliderValues = r
}

// ApplyPriceFilter commits the slider values to the applied range and
// recomputes the visible list.
func (c *Context) ApplyPriceFilter() {
	c.state.PriceRange = c.sliderValues
	c.recompute()
}

// ResetPriceFilter reopens the price range to [0, maxPrice].
func (c *Context) ResetPriceFilter() {
	c.sliderValues = PriceRange{Min: 0, Max: c.maxPrice}
	c.state.PriceRange = c.sliderValues
	c.recompute()
}

// SetMaterials replaces the selected material set and recomputes.
func (c *Context) SetMaterials(materials []string) {
	c.state.SelectedMaterials = materials
	c.recompute()
}

// SetProductTypes replaces the selected type set and recomputes.
func (c *Context) SetProductTypes(types []string) {
	c.state.SelectedProductTypes = types
	c.recompute()
}

// SetAvailability replaces the selected availability flags and recomputes.
func (c *Context) SetAvailability(availability []string) {
	c.state.SelectedAvailability = availability
	c.recompute()
}

// ResetFilters clears materials, types and availability but keeps the sort.
func (c *Context) ResetFilters() {
	c.state.SelectedMaterials = nil
	c.state.SelectedProductTypes = nil
	c.state.SelectedAvailability = nil
	c.sliderValues = PriceRange{Min: 0, Max: c.maxPrice}
	c.state.PriceRange = c.sliderValues
	c.recompute()
}

// SetSortBy switches the sort key and recomputes.
func (c *Context) SetSortBy(sortBy string) {
	c.state.SortBy = sortBy
	c.recompute()
}

// SetPage moves to a 1-based page; out-of-range values clamp.
func (c *Context) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := TotalPages(len(c.filtered)); max > 0 && page > max {
		page = max
	}
	c.state.Page = page
}

func (c *Context) recompute() {
	c.filtered = Apply(c.products, c.state)
	c.state.Page = 1
}

// Category returns the active category.
func (c *Context) Category() models.Category { return c.category }

// State returns a copy of the committed filter state.
func (c *Context) State() FilterState { return c.state }

// MaxPrice is the slider ceiling for the active category.
func (c *Context) MaxPrice() float64 { return c.maxPrice }

// SliderValues returns the provisional (pending) price range.
func (c *Context) SliderValues() PriceRange { return c.sliderValues }

// AvailableMaterials lists the filter panel's material options.
func (c *Context) AvailableMaterials() []string { return c.availableMaterials }

// AvailableProductTypes lists the filter panel's type options.
func (c *Context) AvailableProductTypes() []string { return c.availableTypes }

// Filtered returns the full visible ordered subset.
func (c *Context) Filtered() []models.Product { return c.filtered }

// Page returns the current page slice of the visible subset.
func (c *Context) Page() []models.Product {
	return Paginate(c.filtered, c.state.Page)
}

// TotalPages for the current visible subset.
func (c *Context) TotalPages() int { return TotalPages(len(c.filtered)) }
