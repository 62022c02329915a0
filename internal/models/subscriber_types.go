package models

import "time"

// Subscriber defines the struct for the 'subscribers' table. Each
// subscriber holds one welcome coupon that is redeemable at most once.
type Subscriber struct {
	ID           string     `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	CouponCode   string     `json:"coupon_code" db:"coupon_code"`
	CouponUsed   bool       `json:"coupon_used" db:"coupon_used"`
	CouponUsedAt *time.Time `json:"coupon_used_at,omitempty" db:"coupon_used_at"` // Pointer for NULL
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}
