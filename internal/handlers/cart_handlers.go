package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazartoghar/storefront-golang/internal/cart"
	"github.com/bazartoghar/storefront-golang/internal/middleware"
	"github.com/bazartoghar/storefront-golang/internal/models"
	"github.com/bazartoghar/storefront-golang/internal/pricing"
)

//
// --- Cart Handlers (profile-scoped) ---
//

// loadCart loads the requesting profile's cart from the KV store.
func (h *Handlers) loadCart(c *gin.Context) *cart.Store {
	return cart.Load(c.Request.Context(), h.KV, middleware.ProfileID(c))
}

// cartResponse is the full cart summary every cart mutation returns, so
// the client never has to re-derive totals.
func cartResponse(s *cart.Store) gin.H {
	subtotal := s.GetTotal()
	itemCount := s.GetItemCount()
	// The flat fee only applies once something is in the cart; an empty
	// cart prices to zero end to end.
	shipping := 0.0
	if itemCount > 0 {
		shipping = pricing.ShippingFee(subtotal)
	}
	return gin.H{
		"items":            s.Items(),
		"item_count":       itemCount,
		"subtotal":         pricing.FormatAmount(subtotal),
		"shipping_fee":     pricing.FormatAmount(shipping),
		"total":            pricing.FormatAmount(pricing.OrderTotal(subtotal, shipping, 0)),
		"to_free_shipping": pricing.FormatAmount(pricing.AmountToFreeShipping(subtotal)),
	}
}

// GetCart is the handler for GET /v1/cart.
func (h *Handlers) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(h.loadCart(c)))
}

// AddToCartInput defines the JSON for adding an item to the cart.
type AddToCartInput struct {
	ProductID       string  `json:"product_id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	Quantity        int     `json:"quantity"`
	Image           string  `json:"image"`
	SelectedPackage string  `json:"selected_package"`
	Discount        float64 `json:"discount_percentage"`
	Material        string  `json:"material"`
}

// AddToCart is the handler for POST /v1/cart/items. An item matching an
// existing (product, package) line merges into it.
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	s := h.loadCart(c)
	s.AddToCart(c.Request.Context(), models.CartItem{
		ProductID:          input.ProductID,
		Name:               input.Name,
		Price:              input.Price,
		Quantity:           input.Quantity,
		Image:              input.Image,
		SelectedPackage:    input.SelectedPackage,
		DiscountPercentage: input.Discount,
		Material:           input.Material,
	})

	c.JSON(http.StatusCreated, cartResponse(s))
}

// UpdateCartItemInput defines the JSON for updating a cart line.
// Quantity zero removes the line.
type UpdateCartItemInput struct {
	ProductID       string `json:"product_id" binding:"required"`
	SelectedPackage string `json:"selected_package"`
	Quantity        int    `json:"quantity"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	s := h.loadCart(c)
	s.UpdateQuantity(c.Request.Context(), input.ProductID, input.SelectedPackage, input.Quantity)

	c.JSON(http.StatusOK, cartResponse(s))
}

// RemoveCartItemInput defines the JSON for removing cart lines. With a
// package it targets one line; without, every line for the product.
type RemoveCartItemInput struct {
	ProductID       string  `json:"product_id" binding:"required"`
	SelectedPackage *string `json:"selected_package"`
}

// RemoveCartItem is the handler for DELETE /v1/cart/items.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	var input RemoveCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	s := h.loadCart(c)
	if input.SelectedPackage != nil {
		s.RemoveLine(c.Request.Context(), input.ProductID, *input.SelectedPackage)
	} else {
		s.RemoveFromCart(c.Request.Context(), input.ProductID)
	}

	c.JSON(http.StatusOK, cartResponse(s))
}

// ClearCart is the handler for DELETE /v1/cart.
func (h *Handlers) ClearCart(c *gin.Context) {
	s := h.loadCart(c)
	s.ClearCart(c.Request.Context())
	c.JSON(http.StatusOK, cartResponse(s))
}
