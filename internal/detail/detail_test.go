package detail

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

func product(id, name string, categories ...string) models.Product {
	return models.Product{ID: id, Name: name, ImageURL: name + ".jpg", Categories: categories}
}

func TestPackageOptions(t *testing.T) {
	assert.Equal(t, []string{"1 piece", "250g", "500g", "1kg"}, PackageOptions([]string{"Fruits"}))
	assert.Equal(t, []string{"250ml", "500ml", "1L", "2L"}, PackageOptions([]string{"Beverages"}))
	assert.Len(t, PackageOptions([]string{"Dairy"}), 8)

	// Unrecognized categories fall back to weights only.
	assert.Equal(t, []string{"250g", "500g", "1kg"}, PackageOptions([]string{"Snacks"}))
	assert.Equal(t, []string{"250g", "500g", "1kg"}, PackageOptions(nil))
}

func TestCategoryDetailsLookup(t *testing.T) {
	d := CategoryDetails([]string{"Seafood"})
	assert.Equal(t, "Premium Fresh Seafood Selection", d.Title)
	assert.Len(t, d.Points, 8)
	assert.NotEmpty(t, d.Specifications["Storage Instructions"])

	// First matching category wins.
	d = CategoryDetails([]string{"Unknown", "Dairy"})
	assert.Equal(t, "Fresh Dairy Products Collection", d.Title)

	// No match falls back to the fruits copy.
	d = CategoryDetails([]string{"Unknown"})
	assert.Equal(t, "Premium Fresh Fruit Selection", d.Title)
}

func TestDecorateFillsGallery(t *testing.T) {
	p := product("p1", "Salmon", "Seafood")
	d := Decorate(p)

	assert.Equal(t, []string{"Salmon.jpg"}, d.Images)
	assert.Equal(t, defaultPackageOptions, d.PackageOptions)
	assert.Equal(t, "Premium Fresh Seafood Selection", d.Details.Title)

	p.Images = []string{"a.jpg", "b.jpg"}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, Decorate(p).Images)
}

func TestRelated(t *testing.T) {
	all := []models.Product{
		product("p1", "Apple", "Fruits"),
		product("p2", "Banana", "Fruits"),
		product("p3", "Milk", "Dairy"),
		product("p4", "Smoothie", "Fruits", "Beverages"),
	}

	related := Related(all, all[0])
	ids := make([]string, 0, len(related))
	for _, p := range related {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p2", "p4"}, ids)

	assert.Empty(t, Related(all, product("p9", "Soap", "Household")))
}

func TestRateAttachesAggregatesToRelated(t *testing.T) {
	all := []models.Product{
		product("p1", "Apple", "Fruits"),
		product("p2", "Banana", "Fruits"),
		product("p3", "Mango", "Fruits"),
	}
	summaries := map[string]RatingSummary{
		"p2": {Average: 4.5, Count: 2},
	}

	rated := Rate(Related(all, all[0]), summaries)
	require.Len(t, rated, 2)

	assert.Equal(t, 4.5, rated[0].Rating.Average)
	assert.Equal(t, 2, rated[0].Rating.Count)
	assert.Equal(t, RatingSummary{}, rated[1].Rating) // unreviewed stays zero

	// Every serialized entry carries the aggregate for the rating stars.
	data, err := json.Marshal(rated)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rating"`)
	assert.Contains(t, string(data), `"average":4.5`)
	assert.Contains(t, string(data), `"count":2`)
}

func TestRandomExcludesSelfAndCaps(t *testing.T) {
	all := []models.Product{
		product("p1", "a"), product("p2", "b"), product("p3", "c"),
		product("p4", "d"), product("p5", "e"), product("p6", "f"),
	}
	rng := rand.New(rand.NewSource(1))

	picks := Random(all, "p3", RandomSampleSize, rng)
	require.Len(t, picks, RandomSampleSize)
	for _, p := range picks {
		assert.NotEqual(t, "p3", p.ID)
	}

	// Pool smaller than the sample size returns everything.
	picks = Random(all[:3], "p1", RandomSampleSize, rng)
	assert.Len(t, picks, 2)
}

func TestSummarize(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5, IsActive: true},
		{Rating: 3, IsActive: true},
		{Rating: 1, IsActive: false}, // hidden reviews do not count
	}
	s := Summarize(reviews)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 4.0, s.Average, 1e-9)

	assert.Equal(t, RatingSummary{}, Summarize(nil))
}

func TestReviewFormValidate(t *testing.T) {
	f := &ReviewForm{Rating: 4, Title: "Great", Body: "Very fresh.", Name: "Asha", Email: "a@b.co"}
	require.NoError(t, f.Validate())

	f.Rating = 0
	assert.ErrorIs(t, f.Validate(), ErrIncompleteReview)
	f.Rating = 6
	assert.ErrorIs(t, f.Validate(), ErrIncompleteReview)

	f.Rating = 4
	f.Name = "   "
	assert.ErrorIs(t, f.Validate(), ErrIncompleteReview)
}

func TestReviewFormSuccessBanner(t *testing.T) {
	f := &ReviewForm{Rating: 5, Title: "t", Body: "b", Name: "n", Email: "e@f.co"}
	now := time.Now()

	assert.False(t, f.SuccessVisible(now))

	f.MarkSubmitted(now)
	assert.Zero(t, f.Rating) // fields cleared
	assert.True(t, f.SuccessVisible(now))
	assert.True(t, f.SuccessVisible(now.Add(2*time.Second)))
	assert.False(t, f.SuccessVisible(now.Add(3*time.Second)))
}

func TestQuickViewResetsOnOpen(t *testing.T) {
	p := Decorate(models.Product{ID: "p1", Name: "Juice", ImageURL: "j.jpg", Categories: []string{"Beverages"}, Images: []string{"j1.jpg", "j2.jpg"}})

	var q QuickView
	assert.False(t, q.IsOpen())

	q.Open(p)
	assert.True(t, q.IsOpen())
	assert.Equal(t, 0, q.ImageIndex)
	assert.Equal(t, "250ml", q.SelectedPackage)
	assert.Equal(t, 1, q.Quantity)

	q.SelectImage(1)
	q.SelectPackage("1L")
	q.SetQuantity(3)
	assert.Equal(t, 1, q.ImageIndex)
	assert.Equal(t, "1L", q.SelectedPackage)
	assert.Equal(t, 3, q.Quantity)

	// Reopening starts from a clean selection again.
	q.Close()
	q.Open(p)
	assert.Equal(t, 0, q.ImageIndex)
	assert.Equal(t, "250ml", q.SelectedPackage)
	assert.Equal(t, 1, q.Quantity)
}

func TestQuickViewGuards(t *testing.T) {
	p := Decorate(product("p1", "Apple", "Fruits"))

	var q QuickView
	q.SelectImage(1)
	q.SetQuantity(5)
	assert.Equal(t, 0, q.Quantity) // closed modal ignores input

	q.Open(p)
	q.SelectImage(7) // out of range
	assert.Equal(t, 0, q.ImageIndex)
	q.SelectPackage("10kg") // not an offered option
	assert.Equal(t, "1 piece", q.SelectedPackage)
	q.SetQuantity(0)
	assert.Equal(t, 1, q.Quantity)
}
