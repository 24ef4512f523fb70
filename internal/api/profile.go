package api

import (
	"net/http" // HTTP status codes

	"bet_assist/internal/domain"  // Domain enumerations
	"bet_assist/internal/service" // Profile service

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Money amounts
)

// ProfileRequest is the profile form
type ProfileRequest struct {
	Username        *string          `json:"username"`
	FullName        *string          `json:"full_name"`
	InitialBankroll *decimal.Decimal `json:"initial_bankroll"` // null keeps the bankroll unset
	Currency        domain.Currency  `json:"currency"`
}

// GetProfileHandler returns the profile of the current user
func GetProfileHandler(profiles *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		profile, err := profiles.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// SaveProfileHandler saves the profile form. A lost bankroll seed write is
// reported as a warning next to the saved profile.
func SaveProfileHandler(profiles *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var req ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := profiles.Save(c.Request.Context(), userID, service.ProfileUpdate{
			Username:        req.Username,
			FullName:        req.FullName,
			InitialBankroll: req.InitialBankroll,
			Currency:        req.Currency,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"profile":         result.Profile,
			"bankroll_seeded": result.Seeded,
			"warning":         warningText(result.Warning),
		})
	}
}
