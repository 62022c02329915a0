package handlers

import (
	"database/sql"

	"github.com/bazartoghar/storefront-golang/internal/coupon"
	"github.com/bazartoghar/storefront-golang/internal/kvstore"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB          *sql.DB         // MySQL pool for catalog, reviews, subscribers and content
	KV          kvstore.Store   // Redis-backed per-profile state (cart, favorites, preferences)
	Coupons     *coupon.Service // welcome-coupon validation and redemption
	Subscribers *coupon.MySQLStore
}
