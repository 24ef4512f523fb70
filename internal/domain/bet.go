package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BetStatus of a recorded bet
type BetStatus string

const (
	BetOpen    BetStatus = "open"
	BetWon     BetStatus = "won"
	BetLost    BetStatus = "lost"
	BetVoid    BetStatus = "void"
	BetCashOut BetStatus = "cash_out"
)

// Valid reports whether s is a known status
func (s BetStatus) Valid() bool {
	switch s {
	case BetOpen, BetWon, BetLost, BetVoid, BetCashOut:
		return true
	}
	return false
}

// BetType of a recorded bet
type BetType string

const (
	BetSingle   BetType = "single"
	BetMultiple BetType = "multiple"
	BetSystem   BetType = "system"
)

// Valid reports whether t is a known bet type
func (t BetType) Valid() bool {
	return t == BetSingle || t == BetMultiple || t == BetSystem
}

// Selection is one outcome picked on a bet slip
type Selection struct {
	Outcome string          `json:"outcome"`
	Odds    decimal.Decimal `json:"odds"`
}

// Bookmaker Model
type Bookmaker struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:128;unique;not null" json:"name"`
}

// Bet Model. StakingPlanID and SuggestedStake record which plan was active
// and what it suggested when the bet was entered.
type Bet struct {
	ID             uint                           `gorm:"primaryKey" json:"id"`
	UserID         uint                           `gorm:"index;not null" json:"user_id"`
	BetDatetime    time.Time                      `gorm:"index;not null" json:"bet_datetime"`
	Sport          string                         `gorm:"size:64;not null" json:"sport"`
	League         *string                        `gorm:"size:128" json:"league"`
	Event          string                         `gorm:"size:255;not null" json:"event"`
	BetType        BetType                        `gorm:"size:16;not null;default:single" json:"bet_type"`
	Selections     datatypes.JSONSlice[Selection] `json:"selections"`
	Odds           decimal.Decimal                `gorm:"type:decimal(10,3);not null" json:"odds"`
	Stake          decimal.Decimal                `gorm:"type:decimal(14,2);not null" json:"stake"`
	BookmakerID    uint                           `gorm:"not null" json:"bookmaker_id"`
	Bookmaker      Bookmaker                      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"bookmaker"`
	Status         BetStatus                      `gorm:"size:16;not null;default:open" json:"status"`
	ProfitLoss     *decimal.Decimal               `gorm:"type:decimal(14,2)" json:"profit_loss"`
	Notes          *string                        `gorm:"type:text" json:"notes"`
	StakingPlanID  *uint                          `gorm:"index" json:"staking_plan_id"`
	SuggestedStake *decimal.Decimal               `gorm:"type:decimal(14,2)" json:"suggested_stake"`
	CreatedAt      time.Time                      `json:"created_at"`
}
