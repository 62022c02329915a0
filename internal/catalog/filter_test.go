package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

func strptr(s string) *string { return &s }

func sampleProducts(now time.Time) []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Apple", Price: 3, Material: strptr("Organic"), InStock: true,
			ProductTypes: []string{"Best Seller"}, Categories: []string{"Fruits"}, CreatedAt: now.Add(-60 * 24 * time.Hour)},
		{ID: "p2", Name: "Banana", Price: 2, InStock: true,
			Categories: []string{"Fruits"}, CreatedAt: now.Add(-10 * 24 * time.Hour)},
		{ID: "p3", Name: "Cheddar", Price: 12, Material: strptr("Dairy"), InStock: false,
			ProductTypes: []string{"Special Product"}, Categories: []string{"Dairy"}, CreatedAt: now.Add(-5 * 24 * time.Hour)},
		{ID: "p4", Name: "Orange Juice", Price: 6, InStock: true,
			Categories: []string{"Beverages"}, CreatedAt: now.Add(-90 * 24 * time.Hour)},
		{ID: "p5", Name: "Milk", Price: 4, Material: strptr("Dairy"), InStock: true,
			Categories: []string{"Dairy", "Beverages"}, CreatedAt: now.Add(-1 * 24 * time.Hour)},
	}
}

func openState(max float64) FilterState {
	return FilterState{PriceRange: PriceRange{Min: 0, Max: max}, SortBy: SortDefault, Page: 1}
}

func TestApplyPriceRangeInclusive(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)

	state := openState(100)
	state.PriceRange = PriceRange{Min: 3, Max: 6}

	got := applyAt(products, state, now)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Price, 3.0)
		assert.LessOrEqual(t, p.Price, 6.0)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)

	state := openState(100)
	state.PriceRange = PriceRange{Min: 2, Max: 6}
	state.SelectedAvailability = []string{InStock}

	once := applyAt(products, state, now)
	twice := applyAt(once, state, now)
	assert.Equal(t, once, twice)
}

func TestApplyMaterialFilter(t *testing.T) {
	now := time.Now()
	state := openState(100)
	state.SelectedMaterials = []string{"Dairy"}

	got := applyAt(sampleProducts(now), state, now)
	require.Len(t, got, 2)
	assert.Equal(t, "p3", got[0].ID)
	assert.Equal(t, "p5", got[1].ID)
}

func TestApplyProductTypeFilter(t *testing.T) {
	now := time.Now()
	state := openState(100)
	state.SelectedProductTypes = []string{"Best Seller", "Special Product"}

	got := applyAt(sampleProducts(now), state, now)
	require.Len(t, got, 2)
}

func TestNewProductPseudoType(t *testing.T) {
	now := time.Now()
	state := openState(100)
	state.SelectedProductTypes = []string{NewProductType}

	// Membership comes from the creation timestamp, not stored tags.
	got := applyAt(sampleProducts(now), state, now)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.True(t, IsNewProduct(p.CreatedAt, now))
	}
}

func TestApplyAvailabilityFilter(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)

	tests := []struct {
		name     string
		selected []string
		want     int
	}{
		{"none selected shows all", nil, 5},
		{"in stock only", []string{InStock}, 4},
		{"out of stock only", []string{OutOfStock}, 1},
		{"both selected shows all", []string{InStock, OutOfStock}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := openState(100)
			state.SelectedAvailability = tt.selected
			assert.Len(t, applyAt(products, state, now), tt.want)
		})
	}
}

func TestSortPriceLowThenHighReverse(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)

	low := openState(100)
	low.SortBy = SortPriceLow
	asc := applyAt(products, low, now)

	high := openState(100)
	high.SortBy = SortPriceHigh
	desc := applyAt(products, high, now)

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortNameAndNewest(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)

	state := openState(100)
	state.SortBy = SortName
	byName := applyAt(products, state, now)
	require.Len(t, byName, 5)
	assert.Equal(t, "Apple", byName[0].Name)
	assert.Equal(t, "Orange Juice", byName[4].Name)

	state.SortBy = SortNewest
	newest := applyAt(products, state, now)
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i].CreatedAt.After(newest[i-1].CreatedAt))
	}
}

func TestSortDefaultKeepsInputOrder(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)
	got := applyAt(products, openState(100), now)
	require.Len(t, got, len(products))
	for i := range got {
		assert.Equal(t, products[i].ID, got[i].ID)
	}
}

func TestPaginate(t *testing.T) {
	now := time.Now()
	var products []models.Product
	for i := 0; i < 19; i++ {
		products = append(products, models.Product{ID: string(rune('a' + i)), Price: 1, CreatedAt: now})
	}

	assert.Len(t, Paginate(products, 1), PageSize)
	assert.Len(t, Paginate(products, 2), PageSize)
	assert.Len(t, Paginate(products, 3), 3)
	assert.Empty(t, Paginate(products, 4))
	assert.Len(t, Paginate(products, 0), PageSize) // clamps to page 1
	assert.Equal(t, 3, TotalPages(len(products)))
	assert.Zero(t, TotalPages(0))
}

func TestMaxPrice(t *testing.T) {
	assert.Equal(t, 100.0, MaxPrice(nil))

	products := []models.Product{{Price: 3.2}, {Price: 41.5}, {Price: 17}}
	// Highest 41.5 -> ceil to 42 -> next multiple of 10 is 50.
	assert.Equal(t, 50.0, MaxPrice(products))

	assert.Equal(t, 40.0, MaxPrice([]models.Product{{Price: 40}}))
}

func TestAvailableMaterialsAndTypes(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)

	assert.Equal(t, []string{"Dairy", "Organic"}, AvailableMaterials(products))
	assert.Equal(t, []string{"Best Seller", "Special Product"}, AvailableProductTypes(products))

	// No tags anywhere: the default panel set is offered.
	bare := []models.Product{{ID: "x", Price: 1}}
	assert.Equal(t, []string{"Best Seller", NewProductType, "Special Product"}, AvailableProductTypes(bare))
	assert.Empty(t, AvailableMaterials(bare))
}

func TestWithProductCountsAndAllProducts(t *testing.T) {
	now := time.Now()
	products := sampleProducts(now)
	categories := []models.Category{
		{ID: "c1", Name: "Fruits"},
		{ID: "c2", Name: "Dairy"},
		{ID: "c3", Name: "Seafood"},
	}

	counted := WithProductCounts(categories, products)
	assert.Equal(t, 2, counted[0].ProductCount)
	assert.Equal(t, 2, counted[1].ProductCount)
	assert.Zero(t, counted[2].ProductCount)

	all := AllProductsCategory(len(products))
	assert.Equal(t, "all-products", all.ID)
	assert.Equal(t, len(products), all.ProductCount)
	assert.Len(t, ProductsInCategory(products, all), len(products))
	assert.Len(t, ProductsInCategory(products, counted[1]), 2)
}
