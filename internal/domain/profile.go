package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Bankroll amounts, stakes and plan configs travel as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency of a bankroll
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// Valid reports whether c is one of the supported currencies
func (c Currency) Valid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyGBP:
		return true
	}
	return false
}

// SubscriptionTier gates staking plans and advanced analytics
type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
)

// Valid reports whether t is a known tier
func (t SubscriptionTier) Valid() bool {
	return t == TierFree || t == TierPremium
}

// Profile is the per-user bankroll profile. CurrentBankroll may go negative
// after losses; both bankroll fields are NULL until the user first saves them.
type Profile struct {
	UserID           uint             `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Username         *string          `gorm:"size:64" json:"username"`
	FullName         *string          `gorm:"size:128" json:"full_name"`
	InitialBankroll  *decimal.Decimal `gorm:"type:decimal(14,2)" json:"initial_bankroll"`
	CurrentBankroll  *decimal.Decimal `gorm:"type:decimal(14,2)" json:"current_bankroll"`
	Currency         Currency         `gorm:"size:3;not null;default:EUR" json:"currency"`
	SubscriptionTier SubscriptionTier `gorm:"size:16;not null;default:free" json:"subscription_tier"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// NewProfile returns the profile a user has before saving anything
func NewProfile(userID uint) *Profile {
	return &Profile{
		UserID:           userID,
		Currency:         CurrencyEUR,
		SubscriptionTier: TierFree,
	}
}

// IsPremium reports whether the profile has the premium tier
func (p *Profile) IsPremium() bool {
	return p != nil && p.SubscriptionTier == TierPremium
}

// Bankroll returns the current bankroll, treating NULL as zero
func (p *Profile) Bankroll() decimal.Decimal {
	if p == nil || p.CurrentBankroll == nil {
		return decimal.Zero
	}
	return *p.CurrentBankroll
}
