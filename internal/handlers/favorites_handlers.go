package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazartoghar/storefront-golang/internal/kvstore"
	"github.com/bazartoghar/storefront-golang/internal/middleware"
)

//
// --- Favorites Handlers (profile-scoped) ---
//

// loadFavorites reads the profile's favorite product ids. Malformed data
// degrades to an empty list.
func (h *Handlers) loadFavorites(c *gin.Context) []string {
	profileID := middleware.ProfileID(c)

	raw, ok, err := h.KV.Get(c.Request.Context(), kvstore.FavoritesKey(profileID))
	if err != nil {
		log.Printf("favorites: failed to load for profile %s: %v", profileID, err)
		return []string{}
	}
	if !ok {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil || ids == nil {
		return []string{}
	}
	return ids
}

func (h *Handlers) saveFavorites(c *gin.Context, ids []string) {
	profileID := middleware.ProfileID(c)
	data, _ := json.Marshal(ids)
	if err := h.KV.Set(c.Request.Context(), kvstore.FavoritesKey(profileID), string(data)); err != nil {
		log.Printf("favorites: failed to save for profile %s: %v", profileID, err)
	}
}

// GetFavorites is the handler for GET /v1/favorites.
func (h *Handlers) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": h.loadFavorites(c)})
}

// ToggleFavorite is the handler for POST /v1/favorites/:product_id.
// A product already favorited is removed; otherwise it is added.
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	productID := c.Param("product_id")
	ids := h.loadFavorites(c)

	favorited := false
	kept := ids[:0]
	for _, id := range ids {
		if id == productID {
			favorited = true
			continue
		}
		kept = append(kept, id)
	}
	if !favorited {
		kept = append(kept, productID)
	}

	h.saveFavorites(c, kept)
	c.JSON(http.StatusOK, gin.H{
		"favorites": kept,
		"favorited": !favorited,
	})
}
