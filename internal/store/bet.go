package store

import (
	"context"
	"fmt"

	"bet_assist/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BetStore persists bets and reads bookmaker reference data
type BetStore struct {
	db *gorm.DB
}

// NewBetStore creates a new bet store
func NewBetStore(db *gorm.DB) *BetStore {
	return &BetStore{db: db}
}

// Insert records a bet
func (s *BetStore) Insert(ctx context.Context, bet *domain.Bet) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(bet).Error; err != nil {
		return fmt.Errorf("insert bet for user %d: %w", bet.UserID, err)
	}
	return nil
}

// ListByUser returns the bets of userID, most recent bet first
func (s *BetStore) ListByUser(ctx context.Context, userID uint) ([]domain.Bet, error) {
	var bets []domain.Bet
	err := s.db.WithContext(ctx).
		Preload("Bookmaker").
		Where("user_id = ?", userID).
		Order("bet_datetime desc, id desc").
		Find(&bets).Error
	if err != nil {
		return nil, fmt.Errorf("list bets of user %d: %w", userID, err)
	}
	return bets, nil
}

// Bookmakers returns all bookmakers ordered by name
func (s *BetStore) Bookmakers(ctx context.Context) ([]domain.Bookmaker, error) {
	var bookmakers []domain.Bookmaker
	if err := s.db.WithContext(ctx).Order("name asc").Find(&bookmakers).Error; err != nil {
		return nil, fmt.Errorf("list bookmakers: %w", err)
	}
	return bookmakers, nil
}

// BookmakerExists reports whether a bookmaker with id exists
func (s *BetStore) BookmakerExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&domain.Bookmaker{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check bookmaker %d: %w", id, err)
	}
	return count > 0, nil
}
