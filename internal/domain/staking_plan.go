package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PlanType selects how a staking plan sizes stakes
type PlanType string

const (
	PlanFixedPercentage PlanType = "fixed_percentage" // Stake a percentage of the current bankroll
	PlanFixedUnit       PlanType = "fixed_unit"       // Stake the same amount every time
)

// Valid reports whether t is a known plan type
func (t PlanType) Valid() bool {
	return t == PlanFixedPercentage || t == PlanFixedUnit
}

// PlanConfig is the variant payload stored in staking_plans.config.
// Only the field matching the plan type is set.
type PlanConfig struct {
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	UnitValue  *decimal.Decimal `json:"unit_value,omitempty"`
}

// StakingPlan Model. At most one plan per user has IsActive set.
type StakingPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index:idx_staking_plans_user_active;not null" json:"user_id"`
	PlanType  PlanType       `gorm:"size:32;not null" json:"plan_type"`
	Config    datatypes.JSON `json:"config"`
	IsActive  bool           `gorm:"index:idx_staking_plans_user_active;not null;default:false" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewStakingPlan builds an inactive plan for userID
func NewStakingPlan(userID uint, planType PlanType, cfg PlanConfig) (*StakingPlan, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode plan config: %w", err)
	}
	return &StakingPlan{
		UserID:   userID,
		PlanType: planType,
		Config:   datatypes.JSON(raw),
		IsActive: false,
	}, nil
}

// DecodeConfig parses the stored config payload
func (p *StakingPlan) DecodeConfig() (PlanConfig, error) {
	var cfg PlanConfig
	if len(p.Config) == 0 {
		return cfg, fmt.Errorf("plan %d has no config", p.ID)
	}
	if err := json.Unmarshal(p.Config, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config of plan %d: %w", p.ID, err)
	}
	return cfg, nil
}
