package service

import (
	"context"
	"strings"
	"time"

	"bet_assist/internal/domain"
	"bet_assist/internal/staking"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	minOdds = decimal.NewFromInt(1)
	maxOdds = decimal.NewFromInt(10000)
)

// BetInput is a bet as typed on the bet form
type BetInput struct {
	BetDatetime time.Time
	Sport       string
	League      string
	Event       string
	BetType     domain.BetType
	Outcome     string
	Odds        decimal.Decimal
	Stake       decimal.Decimal
	BookmakerID uint
	Status      domain.BetStatus
	Notes       string
}

// BetService records bets and reads the bet history
type BetService struct {
	bets        BetRepository
	suggestions *SuggestionService
	stats       StatsInvalidator
	now         func() time.Time
}

// NewBetService creates a new bet service
func NewBetService(bets BetRepository, suggestions *SuggestionService, stats StatsInvalidator) *BetService {
	return &BetService{
		bets:        bets,
		suggestions: suggestions,
		stats:       stats,
		now:         time.Now,
	}
}

// Record validates and stores a bet. The plan that was active and the stake
// it suggested are stored with the bet; if they can not be loaded the bet is
// recorded without them.
func (s *BetService) Record(ctx context.Context, userID uint, in BetInput) (*domain.Bet, error) {
	in.Sport = strings.TrimSpace(in.Sport)
	in.Event = strings.TrimSpace(in.Event)
	in.Outcome = strings.TrimSpace(in.Outcome)
	if in.BetType == "" {
		in.BetType = domain.BetSingle
	}
	if in.Status == "" {
		in.Status = domain.BetOpen
	}
	if in.BetDatetime.IsZero() {
		in.BetDatetime = s.now()
	}
	if err := validateBet(in); err != nil {
		return nil, err
	}

	exists, err := s.bets.BookmakerExists(ctx, in.BookmakerID)
	if err != nil {
		return nil, storeErr("check bookmaker", err)
	}
	if !exists {
		return nil, invalid("bookmaker_id", "unknown bookmaker")
	}

	bet := &domain.Bet{
		UserID:      userID,
		BetDatetime: in.BetDatetime,
		Sport:       in.Sport,
		League:      optional(in.League),
		Event:       in.Event,
		BetType:     in.BetType,
		Selections:  datatypes.NewJSONSlice([]domain.Selection{{Outcome: in.Outcome, Odds: in.Odds}}),
		Odds:        in.Odds,
		Stake:       in.Stake,
		BookmakerID: in.BookmakerID,
		Status:      in.Status,
		Notes:       optional(in.Notes),
	}

	// Suggest never returns nil; a failed lookup just leaves the audit fields empty.
	suggestion, _ := s.suggestions.Suggest(ctx, userID)
	if suggestion.Plan != nil {
		planID := suggestion.Plan.ID
		bet.StakingPlanID = &planID
	}
	bet.SuggestedStake = suggestion.SuggestedStake

	if err := s.bets.Insert(ctx, bet); err != nil {
		return nil, storeErr("record bet", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         userID,
		"bet_id":          bet.ID,
		"stake":           bet.Stake.String(),
		"odds":            bet.Odds.String(),
		"status":          bet.Status,
		"staking_plan_id": bet.StakingPlanID,
	}).Info("Bet recorded")

	if err := s.stats.Invalidate(ctx, userID); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("Could not invalidate cached stats")
	}
	return bet, nil
}

// History returns the bets of userID, most recent first
func (s *BetService) History(ctx context.Context, userID uint) ([]domain.Bet, error) {
	bets, err := s.bets.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list bets", err)
	}
	return bets, nil
}

// Bookmakers returns the bookmakers a bet can be placed with
func (s *BetService) Bookmakers(ctx context.Context) ([]domain.Bookmaker, error) {
	bookmakers, err := s.bets.Bookmakers(ctx)
	if err != nil {
		return nil, storeErr("list bookmakers", err)
	}
	return bookmakers, nil
}

func validateBet(in BetInput) error {
	// range checks come first, later comparisons rescale their operands
	switch {
	case staking.CheckRange(in.Odds) != nil:
		return invalid("odds", "is out of range")
	case staking.CheckRange(in.Stake) != nil:
		return invalid("stake", "is out of range")
	}
	switch {
	case in.Sport == "":
		return invalid("sport", "is required")
	case in.Event == "":
		return invalid("event", "is required")
	case in.Outcome == "":
		return invalid("outcome", "is required")
	case in.BookmakerID == 0:
		return invalid("bookmaker_id", "is required")
	case !in.Odds.GreaterThan(minOdds):
		return invalid("odds", "must be greater than 1")
	case in.Odds.GreaterThan(maxOdds):
		return invalid("odds", "can not exceed 10000")
	case !in.Stake.IsPositive():
		return invalid("stake", "must be positive")
	case !in.BetType.Valid():
		return invalid("bet_type", "must be single, multiple or system")
	case !in.Status.Valid():
		return invalid("status", "must be open, won, lost, void or cash_out")
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
