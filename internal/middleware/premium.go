package middleware

import (
	"errors"   // Matching service errors
	"net/http" // HTTP status codes

	"bet_assist/internal/service" // Profile lookups

	"github.com/gin-gonic/gin" // Gin web framework
)

// PremiumOnlyMiddleware lets through users whose profile has the premium tier.
// The tier is read on every request so upgrades apply immediately.
func PremiumOnlyMiddleware(profiles *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		err := profiles.RequirePremium(c.Request.Context(), userID)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, service.ErrPremiumRequired):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Premium subscription required"})
		default:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
		}
	}
}
