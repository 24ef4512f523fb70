package store

import (
	"context"
	"fmt"

	"bet_assist/internal/domain"

	"gorm.io/gorm"
)

// StatsStore calls the aggregation procedures installed by the migrator
type StatsStore struct {
	db *gorm.DB
}

// NewStatsStore creates a new stats store
func NewStatsStore(db *gorm.DB) *StatsStore {
	return &StatsStore{db: db}
}

// Base returns the overall statistics of userID
func (s *StatsStore) Base(ctx context.Context, userID uint) (*domain.BaseStats, error) {
	var stats domain.BaseStats
	if err := s.db.WithContext(ctx).Raw("CALL get_user_base_stats(?)", userID).Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("base stats of user %d: %w", userID, err)
	}
	return &stats, nil
}

// Advanced returns statistics of userID aggregated by groupBy
func (s *StatsStore) Advanced(ctx context.Context, userID uint, groupBy domain.GroupBy) ([]domain.GroupedStats, error) {
	var rows []domain.GroupedStats
	if err := s.db.WithContext(ctx).Raw("CALL get_user_advanced_stats(?, ?)", userID, string(groupBy)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("advanced stats of user %d by %s: %w", userID, groupBy, err)
	}
	return rows, nil
}

// ProfitLossOverTime returns the daily and cumulative profit/loss of userID
func (s *StatsStore) ProfitLossOverTime(ctx context.Context, userID uint) ([]domain.ProfitLossPoint, error) {
	var points []domain.ProfitLossPoint
	if err := s.db.WithContext(ctx).Raw("CALL get_profit_loss_over_time(?)", userID).Scan(&points).Error; err != nil {
		return nil, fmt.Errorf("profit/loss over time of user %d: %w", userID, err)
	}
	return points, nil
}
