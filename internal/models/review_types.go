package models

import "time"

// Review defines the struct for the 'customer_reviews' table.
type Review struct {
	ID            string    `json:"id" db:"id"`
	ProductID     string    `json:"product_id" db:"product_id"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	CustomerEmail string    `json:"customer_email" db:"customer_email"`
	ReviewTitle   string    `json:"review_title" db:"review_title"`
	Rating        int       `json:"rating" db:"rating"` // 1..5
	ReviewText    string    `json:"review_text" db:"review_text"`
	Topic         string    `json:"topic" db:"topic"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
