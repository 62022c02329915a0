package models

import "time"

// Category defines the struct for the 'categories' table.
// ProductCount is derived (products whose category set contains this
// category's name), never stored.
type Category struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	Description  *string   `json:"description" db:"description"` // Use pointer for NULL
	ProductCount int       `json:"product_count" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
