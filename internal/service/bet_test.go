package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bet_assist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type betFixture struct {
	profiles *MockProfileRepository
	plans    *MockPlanRepository
	bets     *MockBetRepository
	stats    *MockStatsInvalidator
	svc      *BetService
}

func newBetFixture() *betFixture {
	f := &betFixture{
		profiles: new(MockProfileRepository),
		plans:    new(MockPlanRepository),
		bets:     new(MockBetRepository),
		stats:    new(MockStatsInvalidator),
	}
	f.svc = NewBetService(f.bets, NewSuggestionService(f.profiles, f.plans), f.stats)
	return f
}

func validBet() BetInput {
	return BetInput{
		BetDatetime: time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		Sport:       "Football",
		League:      "Serie A",
		Event:       "Inter - Milan",
		Outcome:     "1",
		Odds:        dec("2.10"),
		Stake:       dec("20"),
		BookmakerID: 2,
	}
}

func TestBetService_Record_AttachesAuditFields(t *testing.T) {
	f := newBetFixture()
	f.profiles.On("Get", mock.Anything, uint(1)).Return(profileWithBankroll("1000"), nil)
	f.plans.On("Active", mock.Anything, uint(1)).Return(percentagePlan(t, 9, "2"), nil)
	f.bets.On("BookmakerExists", mock.Anything, uint(2)).Return(true, nil)
	f.bets.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Bet")).Return(nil).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Bet).ID = 33 })
	f.stats.On("Invalidate", mock.Anything, uint(1)).Return(nil)

	bet, err := f.svc.Record(context.Background(), 1, validBet())
	require.NoError(t, err)
	assert.Equal(t, uint(33), bet.ID)
	require.NotNil(t, bet.StakingPlanID)
	assert.Equal(t, uint(9), *bet.StakingPlanID)
	require.NotNil(t, bet.SuggestedStake)
	assert.True(t, bet.SuggestedStake.Equal(dec("20")))
	assert.Equal(t, domain.BetSingle, bet.BetType)
	assert.Equal(t, domain.BetOpen, bet.Status)
	require.Len(t, bet.Selections, 1)
	assert.Equal(t, "1", bet.Selections[0].Outcome)
	require.NotNil(t, bet.League)
	assert.Nil(t, bet.Notes)
	f.stats.AssertExpectations(t)
}

func TestBetService_Record_SuggestionFailureDoesNotBlock(t *testing.T) {
	f := newBetFixture()
	f.profiles.On("Get", mock.Anything, uint(1)).Return(nil, errors.New("down"))
	f.plans.On("Active", mock.Anything, uint(1)).Return(nil, errors.New("down"))
	f.bets.On("BookmakerExists", mock.Anything, uint(2)).Return(true, nil)
	f.bets.On("Insert", mock.Anything, mock.Anything).Return(nil)
	f.stats.On("Invalidate", mock.Anything, uint(1)).Return(errors.New("redis down"))

	bet, err := f.svc.Record(context.Background(), 1, validBet())
	require.NoError(t, err)
	assert.Nil(t, bet.StakingPlanID)
	assert.Nil(t, bet.SuggestedStake)
}

func TestBetService_Record_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BetInput)
		field  string
	}{
		{"missing sport", func(b *BetInput) { b.Sport = " " }, "sport"},
		{"missing event", func(b *BetInput) { b.Event = "" }, "event"},
		{"missing outcome", func(b *BetInput) { b.Outcome = "" }, "outcome"},
		{"missing bookmaker", func(b *BetInput) { b.BookmakerID = 0 }, "bookmaker_id"},
		{"odds of one", func(b *BetInput) { b.Odds = dec("1") }, "odds"},
		{"zero stake", func(b *BetInput) { b.Stake = dec("0") }, "stake"},
		{"unknown status", func(b *BetInput) { b.Status = "pending" }, "status"},
		{"unknown type", func(b *BetInput) { b.BetType = "lucky15" }, "bet_type"},
		{"odds huge exponent", func(b *BetInput) { b.Odds = dec("1e50000000") }, "odds"},
		{"odds too high", func(b *BetInput) { b.Odds = dec("25000") }, "odds"},
		{"stake huge exponent", func(b *BetInput) { b.Stake = dec("1e50000000") }, "stake"},
		{"stake too many decimals", func(b *BetInput) { b.Stake = dec("1e-50000000") }, "stake"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBetFixture()
			in := validBet()
			tt.mutate(&in)

			_, err := f.svc.Record(context.Background(), 1, in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			f.bets.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestBetService_Record_UnknownBookmaker(t *testing.T) {
	f := newBetFixture()
	f.bets.On("BookmakerExists", mock.Anything, uint(2)).Return(false, nil)

	_, err := f.svc.Record(context.Background(), 1, validBet())
	assert.True(t, IsValidation(err))
}

func TestBetService_Record_InsertFailure(t *testing.T) {
	f := newBetFixture()
	f.profiles.On("Get", mock.Anything, uint(1)).Return(nil, nil)
	f.plans.On("Active", mock.Anything, uint(1)).Return(nil, nil)
	f.bets.On("BookmakerExists", mock.Anything, uint(2)).Return(true, nil)
	f.bets.On("Insert", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := f.svc.Record(context.Background(), 1, validBet())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	f.stats.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestBetService_History(t *testing.T) {
	f := newBetFixture()
	f.bets.On("ListByUser", mock.Anything, uint(1)).Return([]domain.Bet{{ID: 2}, {ID: 1}}, nil)

	bets, err := f.svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, bets, 2)
}
