// Package detail assembles everything a product page shows beyond the raw
// catalog row: package options, category copy, gallery images, related and
// random picks, and review aggregates.
package detail

import (
	"math/rand"
	"strings"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

// RandomSampleSize is how many "you may also like" products are picked.
const RandomSampleSize = 4

// ReviewTopic tags every product review submitted from the detail page.
const ReviewTopic = "Product Review"

// packageOptions maps a category to the purchasable package variants.
var packageOptions = map[string][]string{
	"fruits":     {"1 piece", "250g", "500g", "1kg"},
	"vegetables": {"1 piece", "250g", "500g", "1kg"},
	"beverages":  {"250ml", "500ml", "1L", "2L"},
	"dairy":      {"1 piece", "250g", "500g", "1kg", "250ml", "500ml", "1L", "2L"},
}

var defaultPackageOptions = []string{"250g", "500g", "1kg"}

func normalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// PackageOptions returns the package variants for a product's first
// recognized category, or the weight-only defaults.
func PackageOptions(categories []string) []string {
	for _, c := range categories {
		if opts, ok := packageOptions[normalizeCategory(c)]; ok {
			return opts
		}
	}
	return defaultPackageOptions
}

// ProductDetail is a catalog product decorated with page-level data.
type ProductDetail struct {
	models.Product
	PackageOptions []string       `json:"package_options"`
	Details        CategoryDetail `json:"details"`
}

// Decorate fills in the detail-page fields. A product without a gallery
// gets its main image as a one-element gallery so the page always has
// something to render.
func Decorate(p models.Product) ProductDetail {
	d := ProductDetail{
		Product:        p,
		PackageOptions: PackageOptions(p.Categories),
		Details:        CategoryDetails(p.Categories),
	}
	if len(d.Images) == 0 {
		d.Images = []string{p.ImageURL}
	}
	return d
}

// Related returns every other product sharing at least one category with
// the selected one, in catalog order.
func Related(all []models.Product, selected models.Product) []models.Product {
	related := []models.Product{}
	for _, p := range all {
		if p.ID == selected.ID {
			continue
		}
		for _, c := range selected.Categories {
			if p.HasCategory(c) {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// Random picks up to n products uniformly, excluding the selected one.
func Random(all []models.Product, excludeID string, n int, rng *rand.Rand) []models.Product {
	pool := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.ID != excludeID {
			pool = append(pool, p)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// RatingSummary aggregates the active reviews of one product.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// RatedProduct is a catalog product carrying its review aggregate. The
// related and random strips on the detail page show rating stars per
// entry, so those lists ship rated products rather than bare ones.
type RatedProduct struct {
	models.Product
	Rating RatingSummary `json:"rating"`
}

// Rate attaches each product's review aggregate from a summaries map
// keyed by product id. Products without reviews keep the zero summary.
func Rate(products []models.Product, summaries map[string]RatingSummary) []RatedProduct {
	out := make([]RatedProduct, len(products))
	for i, p := range products {
		out[i] = RatedProduct{Product: p, Rating: summaries[p.ID]}
	}
	return out
}

// Summarize averages the ratings of active reviews. A product without
// active reviews reports a zero average rather than NaN.
func Summarize(reviews []models.Review) RatingSummary {
	var sum, count int
	for _, r := range reviews {
		if !r.IsActive {
			continue
		}
		sum += r.Rating
		count++
	}
	if count == 0 {
		return RatingSummary{}
	}
	return RatingSummary{Average: float64(sum) / float64(count), Count: count}
}
