package store

import (
	"context"
	"fmt"
	"time"

	"bet_assist/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileStore is the bankroll store
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore creates a new profile store
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Get returns the profile of userID, or nil when the user never saved one
func (s *ProfileStore) Get(ctx context.Context, userID uint) (*domain.Profile, error) {
	var p domain.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile of user %d: %w", userID, err)
	}
	return &p, nil
}

// Upsert writes the editable profile fields, creating the row on first save.
// CurrentBankroll and SubscriptionTier of an existing row are left untouched.
func (s *ProfileStore) Upsert(ctx context.Context, p *domain.Profile) error {
	p.UpdatedAt = time.Now()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "full_name", "initial_bankroll", "currency", "updated_at"}),
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("upsert profile of user %d: %w", p.UserID, err)
	}
	return nil
}

// UpdateCurrentBankroll overwrites current_bankroll
func (s *ProfileStore) UpdateCurrentBankroll(ctx context.Context, userID uint, amount decimal.Decimal) error {
	res := s.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("user_id = ?", userID).
		Update("current_bankroll", amount)
	if res.Error != nil {
		return fmt.Errorf("update current bankroll of user %d: %w", userID, res.Error)
	}
	return nil
}

// SetSubscriptionTier changes the tier, creating a default profile if needed
func (s *ProfileStore) SetSubscriptionTier(ctx context.Context, userID uint, tier domain.SubscriptionTier) error {
	p := domain.NewProfile(userID)
	p.SubscriptionTier = tier
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"subscription_tier", "updated_at"}),
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("set subscription tier of user %d: %w", userID, err)
	}
	return nil
}
