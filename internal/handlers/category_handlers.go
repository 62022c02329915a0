package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazartoghar/storefront-golang/internal/catalog"
	"github.com/bazartoghar/storefront-golang/internal/models"
)

//
// --- Category Handlers ---
//

// GetAllCategories is the handler for GET /v1/categories.
// It returns the synthetic "All Products" entry first, then every stored
// category with its live product count.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, name, slug, image_url, description, created_at, updated_at
		FROM categories
		ORDER BY name ASC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query categories"})
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.ImageURL, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan category row"})
			return
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating category rows"})
		return
	}

	products, ok := h.fetchAllProducts(c)
	if !ok {
		return
	}

	all := catalog.AllProductsCategory(len(products))
	categories = append([]models.Category{all}, catalog.WithProductCounts(categories, products)...)

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
