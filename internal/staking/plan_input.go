package staking

import (
	"errors"
	"strings"

	"bet_assist/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPlanType    = errors.New("unknown plan type")
	ErrNotNumeric         = errors.New("value is not a number")
	ErrNotPositive        = errors.New("value must be positive")
	ErrPercentageTooLarge = errors.New("percentage can not exceed 100")
)

// ParsePlanInput validates the raw value typed for a new plan of planType
// and returns the config to store with it.
func ParsePlanInput(planType domain.PlanType, raw string) (domain.PlanConfig, error) {
	if !planType.Valid() {
		return domain.PlanConfig{}, ErrUnknownPlanType
	}
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return domain.PlanConfig{}, ErrNotNumeric
	}
	if err := CheckRange(value); err != nil {
		return domain.PlanConfig{}, err
	}
	if !value.IsPositive() {
		return domain.PlanConfig{}, ErrNotPositive
	}

	if planType == domain.PlanFixedPercentage {
		if value.GreaterThan(maxPercentage) {
			return domain.PlanConfig{}, ErrPercentageTooLarge
		}
		return domain.PlanConfig{Percentage: &value}, nil
	}
	return domain.PlanConfig{UnitValue: &value}, nil
}
