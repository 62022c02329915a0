package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bazartoghar/storefront-golang/internal/auth"
)

// ProfileIDKey is the gin context key the profile middleware sets.
const ProfileIDKey = "profileID"

// ProfileMiddleware resolves the anonymous shopper identity for routes
// that read or write per-profile state. The profile ID comes from the
// X-Profile-ID header, or from a session token issued by POST /v1/session.
func ProfileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := c.GetHeader("X-Profile-ID")

		if profileID == "" {
			if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
				id, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
				if err != nil {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
					return
				}
				profileID = id
			}
		}

		if profileID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing X-Profile-ID header"})
			return
		}

		c.Set(ProfileIDKey, profileID)
		c.Next()
	}
}

// ProfileID reads the profile ID the middleware stored on the context.
func ProfileID(c *gin.Context) string {
	id, _ := c.Get(ProfileIDKey)
	s, _ := id.(string)
	return s
}
