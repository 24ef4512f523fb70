package service

import (
	"context"
	"errors"

	"bet_assist/internal/domain"
	"bet_assist/internal/staking"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// StakeSuggestion is what the bet form shows next to the stake field
type StakeSuggestion struct {
	Bankroll       *decimal.Decimal    `json:"bankroll"`
	Currency       domain.Currency     `json:"currency"`
	Plan           *domain.StakingPlan `json:"plan"`
	SuggestedStake *decimal.Decimal    `json:"suggested_stake"`
	Unavailable    bool                `json:"unavailable,omitempty"`
}

// SuggestionService derives stake suggestions from the bankroll and the active plan
type SuggestionService struct {
	profiles ProfileRepository
	plans    PlanRepository
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(profiles ProfileRepository, plans PlanRepository) *SuggestionService {
	return &SuggestionService{profiles: profiles, plans: plans}
}

// Suggest loads the current bankroll and active plan of userID and computes
// the suggested stake. It always returns a suggestion; when a store read
// failed the suggestion is empty, Unavailable is set and the error is returned
// alongside so callers can show it without blocking anything.
func (s *SuggestionService) Suggest(ctx context.Context, userID uint) (*StakeSuggestion, error) {
	out := &StakeSuggestion{Currency: domain.CurrencyEUR}
	var errs []error

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		errs = append(errs, storeErr("get profile", err))
	} else {
		bankroll := profile.Bankroll()
		out.Bankroll = &bankroll
		if profile != nil {
			out.Currency = profile.Currency
		}
	}

	plan, err := s.plans.Active(ctx, userID)
	if err != nil {
		errs = append(errs, storeErr("get active plan", err))
	} else {
		out.Plan = plan
	}

	if len(errs) > 0 {
		out.Unavailable = true
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   errors.Join(errs...).Error(),
		}).Warn("Stake suggestion unavailable")
	}
	if out.Bankroll != nil {
		out.SuggestedStake = staking.SuggestStake(*out.Bankroll, out.Plan).Ptr()
	}
	return out, errors.Join(errs...)
}

// Calculate is the plain percentage-of-bankroll calculator
func (s *SuggestionService) Calculate(ctx context.Context, userID uint, percentage decimal.Decimal) (decimal.Decimal, *domain.Profile, error) {
	if err := staking.CheckRange(percentage); err != nil {
		return decimal.Zero, nil, invalid("percentage", "is out of range")
	}
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return decimal.Zero, nil, storeErr("get profile", err)
	}
	if profile == nil {
		profile = domain.NewProfile(userID)
	}
	return staking.PercentageOf(profile.Bankroll(), percentage), profile, nil
}
