package catalog

import (
	"time"

	"github.com/gosimple/slug"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

// AllProductsName is the synthetic aggregate category. It is never
// persisted remotely; its id is derived from the name.
const AllProductsName = "All Products"

// AllProductsID is "all-products".
var AllProductsID = slug.Make(AllProductsName)

// WithProductCounts returns a copy of categories with ProductCount derived
// from category-name membership over the product set.
func WithProductCounts(categories []models.Category, products []models.Product) []models.Category {
	out := make([]models.Category, len(categories))
	for i, c := range categories {
		count := 0
		for j := range products {
			if products[j].HasCategory(c.Name) {
				count++
			}
		}
		c.ProductCount = count
		out[i] = c
	}
	return out
}

// AllProductsCategory builds the synthetic "All Products" entry that fronts
// the category list and aggregates the whole catalog.
func AllProductsCategory(totalProducts int) models.Category {
	desc := "Browse all available products"
	now := time.Now()
	return models.Category{
		ID:           AllProductsID,
		Name:         AllProductsName,
		Slug:         AllProductsID,
		Description:  &desc,
		ProductCount: totalProducts,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ProductsInCategory filters a catalog down to one category by name
// membership. The synthetic aggregate returns everything.
func ProductsInCategory(products []models.Product, category models.Category) []models.Product {
	if category.ID == AllProductsID {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if p.HasCategory(category.Name) {
			out = append(out, p)
		}
	}
	return out
}
