// Package coupon validates and redeems subscriber welcome coupons.
// Checking eligibility and consuming the coupon are separate steps: Check
// never writes, Redeem performs the one-time conditional update, and the
// checkout flow composes the two.
package coupon

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

var (
	// ErrInvalidEmail rejects a coupon attempt before any lookup.
	ErrInvalidEmail = errors.New("please enter a valid email address to use coupon")
	// ErrInvalidCoupon covers both an unknown email and a code mismatch.
	ErrInvalidCoupon = errors.New("invalid coupon code or email")
	// ErrAlreadyUsed means the one-time coupon was consumed earlier.
	ErrAlreadyUsed = errors.New("this coupon has already been used")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Discount types.
const (
	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

// WelcomeCode is the code issued to every new subscriber.
const WelcomeCode = "VEGIST20"

// Discount describes what a validated coupon grants.
type Discount struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Amount converts the descriptor into a money amount against a subtotal.
func (d Discount) Amount(subtotal float64) float64 {
	if d.Type == TypePercentage {
		return subtotal * d.Value / 100
	}
	return d.Value
}

// discounts maps known codes to what they grant. Unknown codes that still
// match a subscriber record fall back to the welcome discount.
var discounts = map[string]Discount{
	WelcomeCode: {Type: TypePercentage, Value: 20},
}

func discountFor(code string) Discount {
	if d, ok := discounts[code]; ok {
		return d
	}
	return Discount{Type: TypePercentage, Value: 20}
}

// Store is the subscriber record access the service needs. FindByEmail
// returns (nil, nil) when no record exists; MarkCouponUsed reports false
// without error when the coupon was already consumed.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	MarkCouponUsed(ctx context.Context, email, code string, usedAt time.Time) (bool, error)
}

// Service runs coupon eligibility and redemption over a Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Check verifies that (email, code) names an unredeemed coupon and returns
// its discount descriptor. Read-only.
func (s *Service) Check(ctx context.Context, email, code string) (Discount, error) {
	if !emailPattern.MatchString(email) {
		return Discount{}, ErrInvalidEmail
	}

	sub, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return Discount{}, err
	}
	if sub == nil || sub.CouponCode != code {
		return Discount{}, ErrInvalidCoupon
	}
	if sub.CouponUsed {
		return Discount{}, ErrAlreadyUsed
	}
	return discountFor(code), nil
}

// Redeem consumes the coupon. The used flag flips as a single conditional
// update, so a concurrent double submit gets ErrAlreadyUsed instead of a
// second redemption.
func (s *Service) Redeem(ctx context.Context, email, code string) (Discount, error) {
	d, err := s.Check(ctx, email, code)
	if err != nil {
		return Discount{}, err
	}

	ok, err := s.store.MarkCouponUsed(ctx, email, code, time.Now())
	if err != nil {
		return Discount{}, err
	}
	if !ok {
		return Discount{}, ErrAlreadyUsed
	}
	return d, nil
}
