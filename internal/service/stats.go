package service

import (
	"context"
	"strconv"
	"time"

	"bet_assist/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	statsBase       = "base"
	statsProfitLoss = "profit_loss"
)

// StatsService reads the aggregate statistics computed by the database,
// through a cache that Invalidate clears whenever the underlying bets change.
type StatsService struct {
	stats StatsRepository
	cache Cache
	ttl   time.Duration
}

// NewStatsService creates a new stats service
func NewStatsService(stats StatsRepository, cache Cache, ttl time.Duration) *StatsService {
	return &StatsService{stats: stats, cache: cache, ttl: ttl}
}

func statsKey(kind string, userID uint) string {
	return "stats:" + kind + ":user:" + strconv.FormatUint(uint64(userID), 10)
}

func advancedKind(groupBy domain.GroupBy) string {
	return "advanced:" + string(groupBy)
}

// Base returns totals, ROI and win rate of userID
func (s *StatsService) Base(ctx context.Context, userID uint) (*domain.BaseStats, error) {
	return readThrough(ctx, s, statsKey(statsBase, userID), func() (*domain.BaseStats, error) {
		return s.stats.Base(ctx, userID)
	})
}

// ProfitLossOverTime returns the daily and cumulative profit/loss of userID
func (s *StatsService) ProfitLossOverTime(ctx context.Context, userID uint) ([]domain.ProfitLossPoint, error) {
	return readThrough(ctx, s, statsKey(statsProfitLoss, userID), func() ([]domain.ProfitLossPoint, error) {
		return s.stats.ProfitLossOverTime(ctx, userID)
	})
}

// Advanced returns statistics of userID grouped by sport or bet type
func (s *StatsService) Advanced(ctx context.Context, userID uint, groupBy domain.GroupBy) ([]domain.GroupedStats, error) {
	if !groupBy.Valid() {
		return nil, ErrInvalidGrouping
	}
	return readThrough(ctx, s, statsKey(advancedKind(groupBy), userID), func() ([]domain.GroupedStats, error) {
		return s.stats.Advanced(ctx, userID, groupBy)
	})
}

// Invalidate drops every cached statistic of userID
func (s *StatsService) Invalidate(ctx context.Context, userID uint) error {
	keys := []string{
		statsKey(statsBase, userID),
		statsKey(statsProfitLoss, userID),
		statsKey(advancedKind(domain.GroupBySport), userID),
		statsKey(advancedKind(domain.GroupByBetType), userID),
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		return storeErr("invalidate stats", err)
	}
	return nil
}

// readThrough serves key from the cache, falling back to load on a miss or
// cache failure and caching what load returned.
func readThrough[T any](ctx context.Context, s *StatsService, key string, load func() (T, error)) (T, error) {
	var cached T
	found, err := s.cache.Get(ctx, key, &cached)
	if err == nil && found {
		return cached, nil
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Stats cache read failed")
	}

	fresh, err := load()
	if err != nil {
		var zero T
		return zero, storeErr("load "+key, err)
	}
	if err := s.cache.Set(ctx, key, fresh, s.ttl); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Stats cache write failed")
	}
	return fresh, nil
}
