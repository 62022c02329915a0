package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bazartoghar/storefront-golang/internal/detail"
	"github.com/bazartoghar/storefront-golang/internal/models"
)

//
// --- Review Handlers ---
//

// fetchReviews loads a product's reviews, newest first. activeOnly hides
// reviews a moderator has switched off.
func (h *Handlers) fetchReviews(c *gin.Context, productID string, activeOnly bool) ([]models.Review, bool) {
	query := `
		SELECT id, product_id, customer_name, customer_email, review_title,
		       rating, review_text, topic, is_active, created_at
		FROM customer_reviews
		WHERE product_id = ?`
	if activeOnly {
		query += " AND is_active = 1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.Query(query, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query reviews"})
		return nil, false
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		err := rows.Scan(
			&r.ID,
			&r.ProductID,
			&r.CustomerName,
			&r.CustomerEmail,
			&r.ReviewTitle,
			&r.Rating,
			&r.ReviewText,
			&r.Topic,
			&r.IsActive,
			&r.CreatedAt,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan review row"})
			return nil, false
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating review rows"})
		return nil, false
	}
	return reviews, true
}

// fetchRatingSummaries loads every product's active-review aggregate in
// one grouped query, keyed by product id.
func (h *Handlers) fetchRatingSummaries(c *gin.Context) (map[string]detail.RatingSummary, bool) {
	rows, err := h.DB.Query(`
		SELECT product_id, AVG(rating), COUNT(*)
		FROM customer_reviews
		WHERE is_active = 1
		GROUP BY product_id`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query review ratings"})
		return nil, false
	}
	defer rows.Close()

	summaries := map[string]detail.RatingSummary{}
	for rows.Next() {
		var productID string
		var s detail.RatingSummary
		if err := rows.Scan(&productID, &s.Average, &s.Count); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan rating row"})
			return nil, false
		}
		summaries[productID] = s
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating rating rows"})
		return nil, false
	}
	return summaries, true
}

// GetProductReviews is the handler for GET /v1/products/:id/reviews.
func (h *Handlers) GetProductReviews(c *gin.Context) {
	reviews, ok := h.fetchReviews(c, c.Param("id"), true)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"rating":  detail.Summarize(reviews),
	})
}

// SubmitReviewInput defines the JSON for posting a product review.
type SubmitReviewInput struct {
	Rating int    `json:"rating"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// SubmitProductReview is the handler for POST /v1/products/:id/reviews.
// Reviews go live immediately; moderation only switches them off later.
func (h *Handlers) SubmitProductReview(c *gin.Context) {
	productID := c.Param("id")

	var input SubmitReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	form := detail.ReviewForm{
		Rating: input.Rating,
		Title:  input.Title,
		Body:   input.Body,
		Name:   input.Name,
		Email:  input.Email,
	}
	if err := form.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		ID:            uuid.NewString(),
		ProductID:     productID,
		CustomerName:  input.Name,
		CustomerEmail: input.Email,
		ReviewTitle:   input.Title,
		Rating:        input.Rating,
		ReviewText:    input.Body,
		Topic:         detail.ReviewTopic,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	query := `
		INSERT INTO customer_reviews
			(id, product_id, customer_name, customer_email, review_title,
			 rating, review_text, topic, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := h.DB.Exec(query,
		review.ID, review.ProductID, review.CustomerName, review.CustomerEmail,
		review.ReviewTitle, review.Rating, review.ReviewText, review.Topic,
		review.IsActive, review.CreatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "review": review})
}
