package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazartoghar/storefront-golang/internal/catalog"
	"github.com/bazartoghar/storefront-golang/internal/kvstore"
	"github.com/bazartoghar/storefront-golang/internal/middleware"
)

//
// --- Preference Handlers (profile-scoped) ---
//

// GetSelectedCategory is the handler for GET /v1/preferences/category.
// A profile with no stored choice defaults to the aggregate category.
func (h *Handlers) GetSelectedCategory(c *gin.Context) {
	profileID := middleware.ProfileID(c)

	name, ok, err := h.KV.Get(c.Request.Context(), kvstore.SelectedCategoryKey(profileID))
	if err != nil {
		log.Printf("preferences: failed to load category for profile %s: %v", profileID, err)
	}
	if !ok || name == "" {
		name = catalog.AllProductsName
	}

	c.JSON(http.StatusOK, gin.H{"category": name})
}

// SetSelectedCategoryInput defines the JSON for saving the category choice.
type SetSelectedCategoryInput struct {
	Category string `json:"category" binding:"required"`
}

// SetSelectedCategory is the handler for PUT /v1/preferences/category.
func (h *Handlers) SetSelectedCategory(c *gin.Context) {
	var input SetSelectedCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	profileID := middleware.ProfileID(c)
	if err := h.KV.Set(c.Request.Context(), kvstore.SelectedCategoryKey(profileID), input.Category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": input.Category})
}
