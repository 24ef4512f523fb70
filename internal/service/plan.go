package service

import (
	"context"
	"errors"

	"bet_assist/internal/domain"
	"bet_assist/internal/staking"

	"github.com/sirupsen/logrus"
)

// PlanService manages staking plans. Each user has at most one active plan;
// activation is a two-step request chain against a store without multi-row
// transactions, ordered so that a failure never leaves two plans active.
type PlanService struct {
	plans PlanRepository
}

// NewPlanService creates a new plan service
func NewPlanService(plans PlanRepository) *PlanService {
	return &PlanService{plans: plans}
}

// Add validates rawValue for planType and stores a new, inactive plan
func (s *PlanService) Add(ctx context.Context, userID uint, planType domain.PlanType, rawValue string) (*domain.StakingPlan, error) {
	cfg, err := staking.ParsePlanInput(planType, rawValue)
	if err != nil {
		return nil, planInputError(err)
	}
	plan, err := domain.NewStakingPlan(userID, planType, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.plans.Insert(ctx, plan); err != nil {
		return nil, storeErr("add plan", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"plan_id":   plan.ID,
		"plan_type": planType,
		"value":     rawValue,
	}).Info("Staking plan added")
	return plan, nil
}

// List returns the plans of userID in creation order
func (s *PlanService) List(ctx context.Context, userID uint) ([]domain.StakingPlan, error) {
	plans, err := s.plans.List(ctx, userID)
	if err != nil {
		return nil, storeErr("list plans", err)
	}
	return plans, nil
}

// Active returns the active plan of userID, or nil. It is always read from
// the store, never cached.
func (s *PlanService) Active(ctx context.Context, userID uint) (*domain.StakingPlan, error) {
	plan, err := s.plans.Active(ctx, userID)
	if err != nil {
		return nil, storeErr("get active plan", err)
	}
	return plan, nil
}

// Activate makes planID the only active plan of userID.
//
// Every active plan is deactivated first; only once that succeeded is planID
// activated. If activation then fails the user is left with no active plan
// and a *PartialSequenceError is returned.
func (s *PlanService) Activate(ctx context.Context, userID, planID uint) (*domain.StakingPlan, error) {
	plan, err := s.plans.Get(ctx, userID, planID)
	if err != nil {
		return nil, storeErr("get plan", err)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	deactivated, err := s.plans.DeactivateAll(ctx, userID)
	if err != nil {
		return nil, storeErr("deactivate plans", err)
	}

	activated, err := s.plans.SetActive(ctx, userID, planID, true)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"plan_id":     planID,
			"deactivated": deactivated,
			"error":       err.Error(),
		}).Warn("Plan activation failed after deactivating previous plans")
		return nil, &PartialSequenceError{
			Op:        "activate plan",
			Completed: "previously active plans deactivated",
			Err:       storeErr("activate plan", err),
		}
	}

	if activated == 0 {
		// deleted between the ownership check and activation
		logrus.WithFields(logrus.Fields{
			"user_id":     userID,
			"plan_id":     planID,
			"deactivated": deactivated,
		}).Warn("Plan disappeared during activation")
		return nil, ErrPlanNotFound
	}

	plan.IsActive = true
	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"plan_id":     planID,
		"deactivated": deactivated,
	}).Info("Staking plan activated")
	return plan, nil
}

// Deactivate clears is_active on planID. Deactivating an inactive plan is a no-op.
func (s *PlanService) Deactivate(ctx context.Context, userID, planID uint) error {
	if _, err := s.plans.SetActive(ctx, userID, planID, false); err != nil {
		return storeErr("deactivate plan", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"plan_id": planID,
	}).Info("Staking plan deactivated")
	return nil
}

// Delete removes planID. Deleting the active plan leaves the user without
// one; no other plan is promoted.
func (s *PlanService) Delete(ctx context.Context, userID, planID uint) error {
	removed, err := s.plans.Delete(ctx, userID, planID)
	if err != nil {
		return storeErr("delete plan", err)
	}
	if removed == 0 {
		return ErrPlanNotFound
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"plan_id": planID,
	}).Info("Staking plan deleted")
	return nil
}

func planInputError(err error) error {
	switch {
	case errors.Is(err, staking.ErrUnknownPlanType):
		return invalid("plan_type", "must be fixed_percentage or fixed_unit")
	case errors.Is(err, staking.ErrNotNumeric), errors.Is(err, staking.ErrNotPositive):
		return invalid("value", "enter a valid positive number")
	case errors.Is(err, staking.ErrOutOfRange):
		return invalid("value", "value is out of range")
	case errors.Is(err, staking.ErrPercentageTooLarge):
		return invalid("value", "percentage can not exceed 100")
	}
	return invalid("value", err.Error())
}
