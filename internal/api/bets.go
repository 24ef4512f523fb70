package api

import (
	"net/http" // HTTP status codes
	"time"     // Bet date

	"bet_assist/internal/domain"  // Domain enumerations
	"bet_assist/internal/service" // Bet service

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Money amounts
)

// BetRequest is the bet form
type BetRequest struct {
	BetDatetime *time.Time       `json:"bet_datetime"` // Defaults to now
	Sport       string           `json:"sport"`
	League      string           `json:"league"`
	Event       string           `json:"event"`
	BetType     domain.BetType   `json:"bet_type"` // Defaults to single
	Outcome     string           `json:"outcome"`
	Odds        decimal.Decimal  `json:"odds"`
	Stake       decimal.Decimal  `json:"stake"`
	BookmakerID uint             `json:"bookmaker_id"`
	Status      domain.BetStatus `json:"status"` // Defaults to open
	Notes       string           `json:"notes"`
}

// BookmakersHandler returns the bookmakers a bet can be placed with
func BookmakersHandler(bets *service.BetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookmakers, err := bets.Bookmakers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookmakers": bookmakers})
	}
}

// BetHistoryHandler returns the bets of the current user, newest first
func BetHistoryHandler(bets *service.BetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		history, err := bets.History(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bets": history})
	}
}

// RecordBetHandler records a bet together with the stake suggested for it
func RecordBetHandler(bets *service.BetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var req BetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		in := service.BetInput{
			Sport:       req.Sport,
			League:      req.League,
			Event:       req.Event,
			BetType:     req.BetType,
			Outcome:     req.Outcome,
			Odds:        req.Odds,
			Stake:       req.Stake,
			BookmakerID: req.BookmakerID,
			Status:      req.Status,
			Notes:       req.Notes,
		}
		if req.BetDatetime != nil {
			in.BetDatetime = *req.BetDatetime
		}
		bet, err := bets.Record(c.Request.Context(), userID, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, bet)
	}
}
