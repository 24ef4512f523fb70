package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"bet_assist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memPlanRepo keeps plans in memory and fails the operations named in failOn
type memPlanRepo struct {
	plans  []domain.StakingPlan
	nextID uint
	failOn map[string]bool
	calls  []string
}

func newMemPlanRepo() *memPlanRepo {
	return &memPlanRepo{nextID: 1, failOn: map[string]bool{}}
}

func (r *memPlanRepo) fail(op string) error {
	r.calls = append(r.calls, op)
	if r.failOn[op] {
		return errors.New(op + " failed")
	}
	return nil
}

func (r *memPlanRepo) List(_ context.Context, userID uint) ([]domain.StakingPlan, error) {
	if err := r.fail("List"); err != nil {
		return nil, err
	}
	var out []domain.StakingPlan
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPlanRepo) Get(_ context.Context, userID, planID uint) (*domain.StakingPlan, error) {
	if err := r.fail("Get"); err != nil {
		return nil, err
	}
	for _, p := range r.plans {
		if p.ID == planID && p.UserID == userID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPlanRepo) Active(_ context.Context, userID uint) (*domain.StakingPlan, error) {
	if err := r.fail("Active"); err != nil {
		return nil, err
	}
	for _, p := range r.plans {
		if p.UserID == userID && p.IsActive {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPlanRepo) Insert(_ context.Context, plan *domain.StakingPlan) error {
	if err := r.fail("Insert"); err != nil {
		return err
	}
	plan.ID = r.nextID
	plan.IsActive = false
	r.nextID++
	r.plans = append(r.plans, *plan)
	return nil
}

func (r *memPlanRepo) DeactivateAll(_ context.Context, userID uint) (int64, error) {
	if err := r.fail("DeactivateAll"); err != nil {
		return 0, err
	}
	var n int64
	for i := range r.plans {
		if r.plans[i].UserID == userID && r.plans[i].IsActive {
			r.plans[i].IsActive = false
			n++
		}
	}
	return n, nil
}

func (r *memPlanRepo) SetActive(_ context.Context, userID, planID uint, active bool) (int64, error) {
	if err := r.fail("SetActive"); err != nil {
		return 0, err
	}
	var n int64
	for i := range r.plans {
		if r.plans[i].ID == planID && r.plans[i].UserID == userID {
			r.plans[i].IsActive = active
			n++
		}
	}
	return n, nil
}

func (r *memPlanRepo) Delete(_ context.Context, userID, planID uint) (int64, error) {
	if err := r.fail("Delete"); err != nil {
		return 0, err
	}
	for i, p := range r.plans {
		if p.ID == planID && p.UserID == userID {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memPlanRepo) activeCount(userID uint) int {
	n := 0
	for _, p := range r.plans {
		if p.UserID == userID && p.IsActive {
			n++
		}
	}
	return n
}

func TestPlanService_Add(t *testing.T) {
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)

	plan, err := svc.Add(context.Background(), 1, domain.PlanFixedPercentage, "2.5")
	require.NoError(t, err)
	assert.Equal(t, uint(1), plan.ID)
	assert.False(t, plan.IsActive)

	cfg, err := plan.DecodeConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Percentage)
	assert.True(t, cfg.Percentage.Equal(dec("2.5")))
	assert.Nil(t, cfg.UnitValue)
}

func TestPlanService_Add_InvalidInputPersistsNothing(t *testing.T) {
	tests := []struct {
		name     string
		planType domain.PlanType
		value    string
	}{
		{"not a number", domain.PlanFixedUnit, "ten"},
		{"zero", domain.PlanFixedUnit, "0"},
		{"negative", domain.PlanFixedPercentage, "-2"},
		{"over a hundred percent", domain.PlanFixedPercentage, "120"},
		{"unknown type", "kelly", "5"},
		{"huge exponent", domain.PlanFixedUnit, "1e50000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemPlanRepo()
			_, err := NewPlanService(repo).Add(context.Background(), 1, tt.planType, tt.value)
			assert.True(t, IsValidation(err))
			assert.Empty(t, repo.plans)
			assert.NotContains(t, repo.calls, "Insert")
		})
	}
}

func TestPlanService_Add_StoreError(t *testing.T) {
	repo := newMemPlanRepo()
	repo.failOn["Insert"] = true
	_, err := NewPlanService(repo).Add(context.Background(), 1, domain.PlanFixedUnit, "10")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestPlanService_Activate_SwitchesActivePlan(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)

	a, err := svc.Add(ctx, 1, domain.PlanFixedPercentage, "2")
	require.NoError(t, err)
	b, err := svc.Add(ctx, 1, domain.PlanFixedUnit, "15")
	require.NoError(t, err)

	_, err = svc.Activate(ctx, 1, a.ID)
	require.NoError(t, err)
	active, err := svc.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, a.ID, active.ID)

	activated, err := svc.Activate(ctx, 1, b.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	active, err = svc.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, b.ID, active.ID)
	assert.Equal(t, 1, repo.activeCount(1))
}

func TestPlanService_Activate_DeactivateFailureSkipsActivation(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)
	a, _ := svc.Add(ctx, 1, domain.PlanFixedUnit, "10")
	b, _ := svc.Add(ctx, 1, domain.PlanFixedUnit, "20")
	_, err := svc.Activate(ctx, 1, a.ID)
	require.NoError(t, err)

	repo.failOn["DeactivateAll"] = true
	repo.calls = nil
	_, err = svc.Activate(ctx, 1, b.ID)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.False(t, IsPartial(err))
	assert.NotContains(t, repo.calls, "SetActive")
	active, _ := repo.Active(ctx, 1)
	assert.Equal(t, a.ID, active.ID)
}

func TestPlanService_Activate_ActivationFailureLeavesNoActivePlan(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)
	a, _ := svc.Add(ctx, 1, domain.PlanFixedUnit, "10")
	b, _ := svc.Add(ctx, 1, domain.PlanFixedUnit, "20")
	_, err := svc.Activate(ctx, 1, a.ID)
	require.NoError(t, err)

	repo.failOn["SetActive"] = true
	_, err = svc.Activate(ctx, 1, b.ID)

	require.Error(t, err)
	assert.True(t, IsPartial(err))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 0, repo.activeCount(1))
}

func TestPlanService_Activate_UnknownPlan(t *testing.T) {
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)
	other, _ := svc.Add(context.Background(), 2, domain.PlanFixedUnit, "10")

	_, err := svc.Activate(context.Background(), 1, other.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.NotContains(t, repo.calls, "DeactivateAll")
}

func TestPlanService_Activate_OrdersSteps(t *testing.T) {
	repo := new(MockPlanRepository)
	plan := &domain.StakingPlan{ID: 4, UserID: 1, PlanType: domain.PlanFixedUnit}
	var order []string
	repo.On("Get", mock.Anything, uint(1), uint(4)).Return(plan, nil)
	repo.On("DeactivateAll", mock.Anything, uint(1)).Return(int64(1), nil).
		Run(func(mock.Arguments) { order = append(order, "deactivate") })
	repo.On("SetActive", mock.Anything, uint(1), uint(4), true).Return(int64(1), nil).
		Run(func(mock.Arguments) { order = append(order, "activate") })

	_, err := NewPlanService(repo).Activate(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"deactivate", "activate"}, order)
	repo.AssertExpectations(t)
}

func TestPlanService_AtMostOneActivePlan(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)
	for i := 0; i < 4; i++ {
		_, err := svc.Add(ctx, 1, domain.PlanFixedUnit, "10")
		require.NoError(t, err)
	}

	for i := 0; i < 500; i++ {
		repo.failOn["DeactivateAll"] = rng.Intn(5) == 0
		repo.failOn["SetActive"] = rng.Intn(5) == 0
		planID := uint(rng.Intn(5) + 1)

		switch rng.Intn(3) {
		case 0, 1:
			_, _ = svc.Activate(ctx, 1, planID)
		case 2:
			_ = svc.Deactivate(ctx, 1, planID)
		}
		require.LessOrEqual(t, repo.activeCount(1), 1, "iteration %d", i)
	}
}

func TestPlanService_Deactivate_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)
	a, _ := svc.Add(ctx, 1, domain.PlanFixedUnit, "10")
	_, _ = svc.Activate(ctx, 1, a.ID)

	require.NoError(t, svc.Deactivate(ctx, 1, a.ID))
	require.NoError(t, svc.Deactivate(ctx, 1, a.ID))
	assert.Equal(t, 0, repo.activeCount(1))
}

func TestPlanService_Delete_ActivePlanIsNotReplaced(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)
	a, _ := svc.Add(ctx, 1, domain.PlanFixedUnit, "10")
	_, _ = svc.Add(ctx, 1, domain.PlanFixedUnit, "20")
	_, _ = svc.Activate(ctx, 1, a.ID)

	require.NoError(t, svc.Delete(ctx, 1, a.ID))
	active, err := svc.Active(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, active)

	assert.ErrorIs(t, svc.Delete(ctx, 1, a.ID), ErrPlanNotFound)
}

func TestPlanService_List_CreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := newMemPlanRepo()
	svc := NewPlanService(repo)
	_, _ = svc.Add(ctx, 1, domain.PlanFixedUnit, "10")
	_, _ = svc.Add(ctx, 2, domain.PlanFixedUnit, "10")
	_, _ = svc.Add(ctx, 1, domain.PlanFixedPercentage, "3")

	plans, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, uint(1), plans[0].ID)
	assert.Equal(t, uint(3), plans[1].ID)
}

func TestPlanService_Activate_PlanDeletedMidway(t *testing.T) {
	repo := new(MockPlanRepository)
	plan := &domain.StakingPlan{ID: 4, UserID: 1, PlanType: domain.PlanFixedUnit}
	repo.On("Get", mock.Anything, uint(1), uint(4)).Return(plan, nil)
	repo.On("DeactivateAll", mock.Anything, uint(1)).Return(int64(1), nil)
	repo.On("SetActive", mock.Anything, uint(1), uint(4), true).Return(int64(0), nil)

	activated, err := NewPlanService(repo).Activate(context.Background(), 1, 4)
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.False(t, IsPartial(err))
	assert.Nil(t, activated)
	assert.False(t, plan.IsActive)
}

func TestPlanService_Deactivate_MissingPlanIsNoop(t *testing.T) {
	repo := newMemPlanRepo()
	assert.NoError(t, NewPlanService(repo).Deactivate(context.Background(), 1, 99))
}
