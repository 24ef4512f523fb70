package api

import (
	"net/http" // HTTP status codes

	"bet_assist/internal/domain"  // Domain enumerations
	"bet_assist/internal/service" // Stats and profile services

	"github.com/gin-gonic/gin" // Gin web framework
)

// BaseStatsHandler returns the overall statistics of the current user
func BaseStatsHandler(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		base, err := stats.Base(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, base)
	}
}

// ProfitLossHandler returns the profit/loss curve of the current user
func ProfitLossHandler(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		points, err := stats.ProfitLossOverTime(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"points": points})
	}
}

// AdvancedStatsHandler returns statistics grouped by sport or bet type
func AdvancedStatsHandler(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		groupBy := domain.GroupBy(c.DefaultQuery("group_by", string(domain.GroupBySport)))
		rows, err := stats.Advanced(c.Request.Context(), userID, groupBy)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"group_by": groupBy, "stats": rows})
	}
}

// RefreshStatsHandler drops the cached statistics so the next read recomputes them
func RefreshStatsHandler(stats *service.StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		if err := stats.Invalidate(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Statistics refreshed"})
	}
}
