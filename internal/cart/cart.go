// Package cart holds the per-profile shopping cart store. The collection
// lives in memory for the session and is written back through the
// key-value persistence interface on every mutation; a persistence failure
// only means "cart not saved this time" and never reaches the caller.
package cart

import (
	"context"
	"encoding/json"
	"log"

	"github.com/bazartoghar/storefront-golang/internal/kvstore"
	"github.com/bazartoghar/storefront-golang/internal/models"
	"github.com/bazartoghar/storefront-golang/internal/pricing"
)

// Store owns one profile's cart lines for the session. It is not safe for
// concurrent use; each request loads its own store.
type Store struct {
	profileID string
	kv        kvstore.Store
	items     []models.CartItem
	open      bool // sidebar flag, presentation only
}

// Load reads the persisted collection for a profile. Missing or malformed
// data degrades to an empty cart; Load never fails.
func Load(ctx context.Context, kv kvstore.Store, profileID string) *Store {
	s := &Store{profileID: profileID, kv: kv, items: []models.CartItem{}}

	raw, ok, err := kv.Get(ctx, kvstore.CartKey(profileID))
	if err != nil {
		log.Printf("cart: failed to load cart for profile %s: %v", profileID, err)
		return s
	}
	if !ok {
		return s
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		// Corrupted payload: reset rather than carry it forward.
		log.Printf("cart: invalid cart data for profile %s, resetting", profileID)
		if err := kv.Remove(ctx, kvstore.CartKey(profileID)); err != nil {
			log.Printf("cart: failed to clear invalid cart: %v", err)
		}
		return s
	}
	s.items = items
	return s
}

// persist writes the full collection back. Failures are logged and
// swallowed.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("cart: failed to serialize cart: %v", err)
		return
	}
	if err := s.kv.Set(ctx, kvstore.CartKey(s.profileID), string(data)); err != nil {
		log.Printf("cart: failed to save cart for profile %s: %v", s.profileID, err)
	}
}

// sameLine is the canonical cart line identity: (product id, package).
func sameLine(a models.CartItem, productID, selectedPackage string) bool {
	return a.ProductID == productID && a.SelectedPackage == selectedPackage
}

// AddToCart merges the incoming item into an existing line with the same
// (product id, package) identity, or appends a new line. Quantities below
// 1 are clamped to 1.
func (s *Store) AddToCart(ctx context.Context, item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range s.items {
		if sameLine(s.items[i], item.ProductID, item.SelectedPackage) {
			s.items[i].Quantity += item.Quantity
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, item)
	s.persist(ctx)
}

// UpdateQuantity sets the quantity of one line. A quantity below 1 is a
// removal request, not an error.
func (s *Store) UpdateQuantity(ctx context.Context, productID, selectedPackage string, quantity int) {
	if quantity < 1 {
		s.RemoveLine(ctx, productID, selectedPackage)
		return
	}
	for i := range s.items {
		if sameLine(s.items[i], productID, selectedPackage) {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// RemoveLine drops the line matching (product id, package).
func (s *Store) RemoveLine(ctx context.Context, productID, selectedPackage string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if !sameLine(item, productID, selectedPackage) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// RemoveFromCart drops every line for a product id, regardless of package.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// ClearCart empties the collection.
func (s *Store) ClearCart(ctx context.Context) {
	s.items = []models.CartItem{}
	s.persist(ctx)
}

// Items returns a copy of the cart lines.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// GetTotal is the cart subtotal: the sum of discounted line totals.
func (s *Store) GetTotal() float64 {
	return pricing.Subtotal(s.items)
}

// GetItemCount is the total quantity across all lines.
func (s *Store) GetItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// OpenCart / CloseCart / IsOpen track the sidebar panel. No business
// meaning.
func (s *Store) OpenCart()    { s.open = true }
func (s *Store) CloseCart()   { s.open = false }
func (s *Store) IsOpen() bool { return s.open }
