package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bazartoghar/storefront-golang/internal/coupon"
	"github.com/bazartoghar/storefront-golang/internal/models"
)

//
// --- Subscriber Handlers ---
//

// SubscribeInput defines the JSON for the newsletter signup.
type SubscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe is the handler for POST /v1/subscribe. Every new subscriber
// is issued the one-time welcome coupon.
func (h *Handlers) Subscribe(c *gin.Context) {
	var input SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid email address"})
		return
	}

	sub := &models.Subscriber{
		ID:         uuid.NewString(),
		Email:      input.Email,
		CouponCode: coupon.WelcomeCode,
		CreatedAt:  time.Now(),
	}

	if err := h.Subscribers.Insert(c.Request.Context(), sub); err != nil {
		if err == coupon.ErrEmailTaken {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Subscribed successfully",
		"coupon_code": sub.CouponCode,
	})
}

//
// --- Coupon Handlers ---
//

// CouponInput defines the JSON for both coupon endpoints.
type CouponInput struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func couponStatus(err error) int {
	switch err {
	case coupon.ErrInvalidEmail:
		return http.StatusBadRequest
	case coupon.ErrInvalidCoupon:
		return http.StatusNotFound
	case coupon.ErrAlreadyUsed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CheckCoupon is the handler for POST /v1/coupons/check. It validates
// without consuming, so previewing a discount at the cart never burns
// the coupon.
func (h *Handlers) CheckCoupon(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	discount, err := h.Coupons.Check(c.Request.Context(), input.Email, input.Code)
	if err != nil {
		c.JSON(couponStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "discount": discount})
}

// RedeemCoupon is the handler for POST /v1/coupons/redeem.
func (h *Handlers) RedeemCoupon(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	discount, err := h.Coupons.Redeem(c.Request.Context(), input.Email, input.Code)
	if err != nil {
		c.JSON(couponStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"redeemed": true, "discount": discount})
}
