package api

import (
	"net/http" // HTTP status codes

	"bet_assist/internal/service" // Suggestion service

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Money amounts
)

// SuggestionHandler returns the stake suggested by the active plan. Store
// failures produce an empty suggestion flagged as unavailable, never an error.
func SuggestionHandler(suggestions *service.SuggestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		suggestion, err := suggestions.Suggest(c.Request.Context(), userID)
		if err != nil {
			logError(c, err)
		}
		c.JSON(http.StatusOK, suggestion)
	}
}

// CalculatorHandler returns percentage % of the current bankroll
func CalculatorHandler(suggestions *service.SuggestionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		percentage, err := decimal.NewFromString(c.Query("percentage"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percentage must be a number", "field": "percentage"})
			return
		}
		amount, profile, err := suggestions.Calculate(c.Request.Context(), userID, percentage)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"bankroll":   profile.Bankroll(),
			"currency":   profile.Currency,
			"percentage": percentage,
			"amount":     amount,
		})
	}
}
