package models

import "time"

// BlogPost defines the struct for the 'blog_posts' table.
type BlogPost struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Summary     string    `json:"summary" db:"summary"`
	Content     string    `json:"content" db:"content"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Author      *string   `json:"author,omitempty" db:"author"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	PublishDate time.Time `json:"publish_date" db:"publish_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Offer defines the struct for the 'offers' table (promotional banners).
type Offer struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
