package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazartoghar/storefront-golang/internal/kvstore"
	"github.com/bazartoghar/storefront-golang/internal/models"
)

func newTestStore(t *testing.T) (*Store, kvstore.Store) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	return Load(context.Background(), kv, "profile-1"), kv
}

func apple(qty int) models.CartItem {
	return models.CartItem{ProductID: "p1", Name: "Apple", Price: 3, Quantity: qty, SelectedPackage: "500g"}
}

func TestAddToCartMergesSameLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, apple(2))
	s.AddToCart(ctx, apple(3))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartDifferentPackageIsNewLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, apple(1))
	other := apple(1)
	other.SelectedPackage = "1kg"
	s.AddToCart(ctx, other)

	assert.Len(t, s.Items(), 2)
	assert.Equal(t, 2, s.GetItemCount())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, apple(2))
	s.UpdateQuantity(ctx, "p1", "500g", 0)

	assert.Empty(t, s.Items())
	assert.Zero(t, s.GetItemCount())
}

func TestUpdateQuantityTargetsPackageVariant(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, apple(1))
	big := apple(1)
	big.SelectedPackage = "1kg"
	s.AddToCart(ctx, big)

	s.UpdateQuantity(ctx, "p1", "1kg", 4)

	for _, item := range s.Items() {
		if item.SelectedPackage == "1kg" {
			assert.Equal(t, 4, item.Quantity)
		} else {
			assert.Equal(t, 1, item.Quantity)
		}
	}
}

func TestRemoveFromCartDropsAllVariants(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, apple(1))
	big := apple(1)
	big.SelectedPackage = "1kg"
	s.AddToCart(ctx, big)
	s.AddToCart(ctx, models.CartItem{ProductID: "p2", Name: "Milk", Price: 4, Quantity: 1})

	s.RemoveFromCart(ctx, "p1")

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestGetTotalUsesDiscountedPrices(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddToCart(ctx, models.CartItem{ProductID: "p1", Price: 100, DiscountPercentage: 20, Quantity: 2})
	s.AddToCart(ctx, models.CartItem{ProductID: "p2", Price: 5, Quantity: 1})

	assert.InDelta(t, 165.0, s.GetTotal(), 1e-9)
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	s := Load(ctx, kv, "profile-1")
	s.AddToCart(ctx, apple(2))
	s.ClearCart(ctx)
	s.AddToCart(ctx, apple(3))

	// A fresh session for the same profile sees the last written state.
	reloaded := Load(ctx, kv, "profile-1")
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	// Other profiles are isolated.
	assert.Empty(t, Load(ctx, kv, "profile-2").Items())
}

func TestLoadMalformedDataResetsToEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, kvstore.CartKey("profile-1"), `{"not":"an array"}`))

	s := Load(ctx, kv, "profile-1")
	assert.Empty(t, s.Items())

	// The corrupted payload is cleared, not carried forward.
	_, ok, err := kv.Get(ctx, kvstore.CartKey("profile-1"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSidebarFlag(t *testing.T) {
	s, _ := newTestStore(t)
	assert.False(t, s.IsOpen())
	s.OpenCart()
	assert.True(t, s.IsOpen())
	s.CloseCart()
	assert.False(t, s.IsOpen())
}
