package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bazartoghar/storefront-golang/internal/auth"
)

//
// --- Session Handler ---
//

// CreateSession is the handler for POST /v1/session. It mints a fresh
// anonymous profile ID and a signed token carrying it, so a client can
// keep its cart, favorites and preferences across visits without an
// account.
func (h *Handlers) CreateSession(c *gin.Context) {
	profileID := uuid.NewString()

	token, err := auth.GenerateToken(profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"profile_id": profileID,
		"token":      token,
	})
}
