package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"bet_assist/internal/domain"  // Domain enumerations
	"bet_assist/internal/service" // Account and profile services

	"github.com/gin-gonic/gin" // Gin web framework
)

// SubscriptionRequest changes the tier of a user
type SubscriptionRequest struct {
	Tier domain.SubscriptionTier `json:"tier" binding:"required"`
}

// ListUsersHandler returns a page of users with their subscription tier
func ListUsersHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1      // Default page number
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v
			}
		}
		// Page size is capped at 100
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v
			}
		}
		result, err := users.List(c.Request.Context(), page, pageSize)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// SetSubscriptionHandler grants or revokes the premium tier of a user
func SetSubscriptionHandler(users *service.UserService, profiles *service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := idParam(c)
		if !ok {
			return
		}
		var req SubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Only existing accounts get a profile row
		if _, err := users.ByID(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		if err := profiles.SetSubscriptionTier(c.Request.Context(), userID, req.Tier); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "subscription_tier": req.Tier})
	}
}
