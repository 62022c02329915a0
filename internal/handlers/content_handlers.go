package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bazartoghar/storefront-golang/internal/models"
)

//
// --- Content Handlers (blog + offers) ---
//

// GetBlogPosts is the handler for GET /v1/blog-posts. It returns the six
// newest published posts for the home page strip.
func (h *Handlers) GetBlogPosts(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, title, summary, content, image_url, author, is_published, publish_date, created_at
		FROM blog_posts
		WHERE is_published = 1
		ORDER BY publish_date DESC
		LIMIT 6`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query blog posts"})
		return
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		var p models.BlogPost
		err := rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Content, &p.ImageURL,
			&p.Author, &p.IsPublished, &p.PublishDate, &p.CreatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan blog post row"})
			return
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating blog post rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetActiveOffers is the handler for GET /v1/offers/active. Only offers
// that are switched on and not past their end date are returned.
func (h *Handlers) GetActiveOffers(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT id, title, description, image_url, is_active, end_date, created_at
		FROM offers
		WHERE is_active = 1 AND end_date > NOW()
		ORDER BY end_date ASC`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query offers"})
		return
	}
	defer rows.Close()

	offers := []models.Offer{}
	for rows.Next() {
		var o models.Offer
		err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.ImageURL,
			&o.IsActive, &o.EndDate, &o.CreatedAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan offer row"})
			return
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating offer rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": offers})
}
