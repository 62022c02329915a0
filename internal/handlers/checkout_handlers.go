package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bazartoghar/storefront-golang/internal/checkout"
	"github.com/bazartoghar/storefront-golang/internal/middleware"
	"github.com/bazartoghar/storefront-golang/internal/pricing"
)

//
// --- Checkout Handler (profile-scoped) ---
//

// CheckoutInput defines the JSON for placing an order.
type CheckoutInput struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`

	PaymentMethod string `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	ESewaID       string `json:"esewaId"`
	ESewaPassword string `json:"esewaPassword"`
	KhaltiNumber  string `json:"khaltiNumber"`
	KhaltiMPIN    string `json:"khaltiMpin"`

	CouponCode string `json:"couponCode"`
}

// Checkout is the handler for POST /v1/checkout. It validates the form,
// prices the cart, redeems an optional coupon, records the order and
// clears the cart. The coupon redemption happens only after validation
// passes, so a rejected form never burns a coupon.
func (h *Handlers) Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	form := checkout.NewForm()
	form.Email = input.Email
	form.FirstName = input.FirstName
	form.LastName = input.LastName
	form.Address = input.Address
	form.City = input.City
	if input.PaymentMethod != "" {
		form.SetPaymentMethod(input.PaymentMethod)
	}
	form.ESewaID = input.ESewaID
	form.ESewaPassword = input.ESewaPassword
	form.KhaltiNumber = input.KhaltiNumber
	form.KhaltiMPIN = input.KhaltiMPIN

	if !form.Validate() {
		c.JSON(http.StatusBadRequest, gin.H{"errors": form.Errors()})
		return
	}

	s := h.loadCart(c)
	itemCount := s.GetItemCount()
	if itemCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	subtotal := s.GetTotal()
	shipping := pricing.ShippingFee(subtotal)

	var discountAmount float64
	if input.CouponCode != "" {
		discount, err := h.Coupons.Redeem(c.Request.Context(), input.Email, input.CouponCode)
		if err != nil {
			c.JSON(couponStatus(err), gin.H{"error": err.Error()})
			return
		}
		discountAmount = discount.Amount(subtotal)
	}

	total := pricing.OrderTotal(subtotal, shipping, discountAmount)
	orderID := uuid.NewString()

	query := `
		INSERT INTO orders
			(id, profile_id, email, first_name, last_name, address, city,
			 payment_method, coupon_code, subtotal, shipping_fee, discount, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query,
		orderID, middleware.ProfileID(c), input.Email, input.FirstName, input.LastName,
		input.Address, input.City, form.PaymentMethod, nullableCode(input.CouponCode),
		subtotal, shipping, discountAmount, total, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
		return
	}

	s.ClearCart(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"order_id":     orderID,
		"item_count":   itemCount,
		"subtotal":     pricing.FormatAmount(subtotal),
		"shipping_fee": pricing.FormatAmount(shipping),
		"discount":     pricing.FormatAmount(discountAmount),
		"total":        pricing.FormatAmount(total),
	})
}

func nullableCode(code string) interface{} {
	if code == "" {
		return nil
	}
	return code
}
