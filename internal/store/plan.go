package store

import (
	"context"
	"fmt"
	"time"

	"bet_assist/internal/domain"

	"gorm.io/gorm"
)

// PlanStore is the staking plan store. It offers no multi-row atomicity:
// callers sequence DeactivateAll and SetActive themselves.
type PlanStore struct {
	db *gorm.DB
}

// NewPlanStore creates a new plan store
func NewPlanStore(db *gorm.DB) *PlanStore {
	return &PlanStore{db: db}
}

// List returns the plans of userID in creation order
func (s *PlanStore) List(ctx context.Context, userID uint) ([]domain.StakingPlan, error) {
	var plans []domain.StakingPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("list plans of user %d: %w", userID, err)
	}
	return plans, nil
}

// Get returns a plan owned by userID, or nil
func (s *PlanStore) Get(ctx context.Context, userID, planID uint) (*domain.StakingPlan, error) {
	var plan domain.StakingPlan
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan %d: %w", planID, err)
	}
	return &plan, nil
}

// Active returns the active plan of userID, or nil when none is active
func (s *PlanStore) Active(ctx context.Context, userID uint) (*domain.StakingPlan, error) {
	var plans []domain.StakingPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("updated_at desc").
		Limit(1).
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("get active plan of user %d: %w", userID, err)
	}
	if len(plans) == 0 {
		return nil, nil
	}
	return &plans[0], nil
}

// Insert persists a new plan. New plans are always inactive.
func (s *PlanStore) Insert(ctx context.Context, plan *domain.StakingPlan) error {
	plan.IsActive = false
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("insert plan for user %d: %w", plan.UserID, err)
	}
	return nil
}

// DeactivateAll clears is_active on every active plan of userID
func (s *PlanStore) DeactivateAll(ctx context.Context, userID uint) (int64, error) {
	res := s.db.WithContext(ctx).Model(&domain.StakingPlan{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if res.Error != nil {
		return 0, fmt.Errorf("deactivate plans of user %d: %w", userID, res.Error)
	}
	return res.RowsAffected, nil
}

// SetActive sets is_active on one plan of userID and reports how many rows
// changed. After DeactivateAll, activating an existing plan always changes it.
func (s *PlanStore) SetActive(ctx context.Context, userID, planID uint, active bool) (int64, error) {
	res := s.db.WithContext(ctx).Model(&domain.StakingPlan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now()})
	if res.Error != nil {
		return 0, fmt.Errorf("set plan %d active=%t: %w", planID, active, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a plan of userID and reports how many rows went away
func (s *PlanStore) Delete(ctx context.Context, userID, planID uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).Delete(&domain.StakingPlan{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete plan %d: %w", planID, res.Error)
	}
	return res.RowsAffected, nil
}
