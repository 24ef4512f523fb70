// Package staking turns a bankroll and a staking plan into a suggested stake.
//
// Everything here is advisory: invalid or missing inputs yield "no suggestion"
// and never an error, so a broken plan can not block bet entry.
package staking

import (
	"bet_assist/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	hundred       = decimal.NewFromInt(100)
	maxPercentage = hundred
)

// Suggestion is an optional stake. A zero Amount with OK set is a real
// suggestion; OK unset means no suggestion is available.
type Suggestion struct {
	Amount decimal.Decimal
	OK     bool
}

// Ptr returns the amount, or nil when there is no suggestion
func (s Suggestion) Ptr() *decimal.Decimal {
	if !s.OK {
		return nil
	}
	amount := s.Amount
	return &amount
}

func suggest(amount decimal.Decimal) Suggestion {
	return Suggestion{Amount: Round2(amount), OK: true}
}

// SuggestStake computes the stake the active plan recommends for bankroll.
// A negative bankroll yields a negative suggestion; callers decide whether to show it.
func SuggestStake(bankroll decimal.Decimal, plan *domain.StakingPlan) Suggestion {
	if plan == nil {
		return Suggestion{}
	}
	cfg, err := plan.DecodeConfig()
	if err != nil {
		return Suggestion{}
	}

	switch plan.PlanType {
	case domain.PlanFixedPercentage:
		p := cfg.Percentage
		if p == nil || !p.IsPositive() || p.GreaterThan(maxPercentage) {
			return Suggestion{}
		}
		return suggest(bankroll.Mul(*p).Div(hundred))
	case domain.PlanFixedUnit:
		u := cfg.UnitValue
		if u == nil || !u.IsPositive() {
			return Suggestion{}
		}
		return suggest(*u)
	}
	return Suggestion{}
}

// PercentageOf is the free-form stake calculator: percentage of bankroll,
// rounded to cents. Negative percentages are not rejected.
func PercentageOf(bankroll, percentage decimal.Decimal) decimal.Decimal {
	return Round2(bankroll.Mul(percentage).Div(hundred))
}

// Round2 rounds to two decimal places, halves away from zero
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
