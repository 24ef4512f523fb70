package service

import (
	"context"
	"time"

	"bet_assist/internal/domain"

	"github.com/shopspring/decimal"
)

// ProfileRepository defines the bankroll store
type ProfileRepository interface {
	// Get returns the profile of userID, or nil when none was saved yet
	Get(ctx context.Context, userID uint) (*domain.Profile, error)

	// Upsert writes the editable profile fields, creating the row if needed
	Upsert(ctx context.Context, p *domain.Profile) error

	// UpdateCurrentBankroll overwrites current_bankroll
	UpdateCurrentBankroll(ctx context.Context, userID uint, amount decimal.Decimal) error

	// SetSubscriptionTier changes the subscription tier
	SetSubscriptionTier(ctx context.Context, userID uint, tier domain.SubscriptionTier) error
}

// PlanRepository defines the staking plan store
type PlanRepository interface {
	// List returns the plans of userID in creation order
	List(ctx context.Context, userID uint) ([]domain.StakingPlan, error)

	// Get returns a plan owned by userID, or nil
	Get(ctx context.Context, userID, planID uint) (*domain.StakingPlan, error)

	// Active returns the active plan of userID, or nil
	Active(ctx context.Context, userID uint) (*domain.StakingPlan, error)

	// Insert persists a new inactive plan
	Insert(ctx context.Context, plan *domain.StakingPlan) error

	// DeactivateAll clears is_active on every active plan of userID
	DeactivateAll(ctx context.Context, userID uint) (int64, error)

	// SetActive sets is_active on one plan and reports how many rows matched
	SetActive(ctx context.Context, userID, planID uint, active bool) (int64, error)

	// Delete removes one plan
	Delete(ctx context.Context, userID, planID uint) (int64, error)
}

// BetRepository defines the bet store
type BetRepository interface {
	Insert(ctx context.Context, bet *domain.Bet) error
	ListByUser(ctx context.Context, userID uint) ([]domain.Bet, error)
	Bookmakers(ctx context.Context) ([]domain.Bookmaker, error)
	BookmakerExists(ctx context.Context, id uint) (bool, error)
}

// StatsRepository defines the aggregate statistics procedures
type StatsRepository interface {
	Base(ctx context.Context, userID uint) (*domain.BaseStats, error)
	Advanced(ctx context.Context, userID uint, groupBy domain.GroupBy) ([]domain.GroupedStats, error)
	ProfitLossOverTime(ctx context.Context, userID uint) ([]domain.ProfitLossPoint, error)
}

// UserRepository defines the account store
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	ByUsername(ctx context.Context, username string) (*domain.User, error)
	ByID(ctx context.Context, id uint) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
}

// Cache is a JSON value cache with expiry
type Cache interface {
	// Get decodes the value under key into dest and reports whether it was found
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes keys
	Delete(ctx context.Context, keys ...string) error
}

// StatsInvalidator drops cached statistics of a user so the next read refetches them
type StatsInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}
