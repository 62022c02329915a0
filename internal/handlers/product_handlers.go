package handlers

import (
	"database/sql"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bazartoghar/storefront-golang/internal/catalog"
	"github.com/bazartoghar/storefront-golang/internal/detail"
	"github.com/bazartoghar/storefront-golang/internal/models"
)

//
// --- Product Handlers ---
//

const productColumns = `
	id, name, description, price, image_url, material,
	in_stock, discount_percentage, categories, product_types, images,
	created_at, updated_at`

// scanProduct scans one row and decodes the JSON array columns.
func scanProduct(scan func(dest ...interface{}) error) (models.Product, error) {
	var p models.Product
	var dbCategories, dbTypes, dbImages []byte

	err := scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.Material,
		&p.InStock,
		&p.DiscountPercentage,
		&dbCategories,
		&dbTypes,
		&dbImages,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return p, err
	}

	if len(dbCategories) > 0 {
		_ = json.Unmarshal(dbCategories, &p.Categories)
	}
	if len(dbTypes) > 0 {
		_ = json.Unmarshal(dbTypes, &p.ProductTypes)
	}
	if len(dbImages) > 0 {
		_ = json.Unmarshal(dbImages, &p.Images)
	}
	return p, nil
}

// fetchProducts runs a product query and scans every row.
func (h *Handlers) fetchProducts(c *gin.Context, query string, args ...interface{}) ([]models.Product, bool) {
	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query products"})
		return nil, false
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row"})
			return nil, false
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating product rows"})
		return nil, false
	}
	return products, true
}

func (h *Handlers) fetchAllProducts(c *gin.Context) ([]models.Product, bool) {
	return h.fetchProducts(c, "SELECT"+productColumns+" FROM products ORDER BY created_at DESC")
}

// filterStateFromQuery maps listing query parameters onto a filter state.
// Absent parameters keep the defaults: full price range, no selections,
// default sort, first page.
func filterStateFromQuery(c *gin.Context, maxPrice float64) catalog.FilterState {
	state := catalog.FilterState{
		PriceRange: catalog.PriceRange{Min: 0, Max: maxPrice},
		SortBy:     catalog.SortDefault,
		Page:       1,
	}

	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		state.PriceRange.Min = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		state.PriceRange.Max = v
	}
	if v := c.Query("materials"); v != "" {
		state.SelectedMaterials = strings.Split(v, ",")
	}
	if v := c.Query("types"); v != "" {
		state.SelectedProductTypes = strings.Split(v, ",")
	}
	if v := c.Query("availability"); v != "" {
		state.SelectedAvailability = strings.Split(v, ",")
	}
	if v := c.Query("sort"); v != "" {
		state.SortBy = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		state.Page = v
	}
	return state
}

// GetProducts is the handler for GET /v1/products.
// It supports ?category=, ?search= and the filter/sort/page parameters,
// and returns one page plus the facets the filter sidebar needs.
func (h *Handlers) GetProducts(c *gin.Context) {
	all, ok := h.fetchAllProducts(c)
	if !ok {
		return
	}

	scope := all
	if name := c.Query("category"); name != "" && name != catalog.AllProductsName {
		scope = catalog.ProductsInCategory(all, models.Category{Name: name})
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		matched := []models.Product{}
		needle := strings.ToLower(search)
		for _, p := range scope {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				matched = append(matched, p)
			}
		}
		scope = matched
	}

	maxPrice := catalog.MaxPrice(scope)
	state := filterStateFromQuery(c, maxPrice)

	filtered := catalog.Apply(scope, state)
	page := catalog.Paginate(filtered, state.Page)

	c.JSON(http.StatusOK, gin.H{
		"products":      page,
		"total":         len(filtered),
		"page":          state.Page,
		"total_pages":   catalog.TotalPages(len(filtered)),
		"max_price":     maxPrice,
		"materials":     catalog.AvailableMaterials(scope),
		"product_types": catalog.AvailableProductTypes(scope),
	})
}

// GetTrendingProducts is the handler for GET /v1/products/trending.
func (h *Handlers) GetTrendingProducts(c *gin.Context) {
	products, ok := h.fetchProducts(c,
		"SELECT"+productColumns+" FROM products ORDER BY created_at DESC LIMIT 12")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProductDetail is the handler for GET /v1/products/:id.
// It aggregates everything the product page needs in one response:
// the decorated product, its rating summary, related and random picks.
func (h *Handlers) GetProductDetail(c *gin.Context) {
	productID := c.Param("id")

	row := h.DB.QueryRow("SELECT"+productColumns+" FROM products WHERE id = ?", productID)
	product, err := scanProduct(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	all, ok := h.fetchAllProducts(c)
	if !ok {
		return
	}

	summaries, ok := h.fetchRatingSummaries(c)
	if !ok {
		return
	}

	rng := rand.New(rand.NewSource(rand.Int63()))
	c.JSON(http.StatusOK, gin.H{
		"product": detail.Decorate(product),
		"rating":  summaries[product.ID],
		"related": detail.Rate(detail.Related(all, product), summaries),
		"random":  detail.Rate(detail.Random(all, product.ID, detail.RandomSampleSize, rng), summaries),
	})
}
