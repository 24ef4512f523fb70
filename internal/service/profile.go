package service

import (
	"context"

	"bet_assist/internal/domain"
	"bet_assist/internal/staking"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProfileUpdate holds the fields a user edits on the profile form
type ProfileUpdate struct {
	Username        *string
	FullName        *string
	InitialBankroll *decimal.Decimal
	Currency        domain.Currency
}

// SaveResult is the outcome of a profile save. Warning is set when the
// profile was saved but the bankroll seed write was lost.
type SaveResult struct {
	Profile *domain.Profile
	Seeded  bool
	Warning error
}

// ProfileService reads and saves bankroll profiles
type ProfileService struct {
	profiles ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the profile of userID. A user who never saved a profile gets
// the defaults: EUR, free tier, no bankroll.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, storeErr("get profile", err)
	}
	if p == nil {
		return domain.NewProfile(userID), nil
	}
	return p, nil
}

// RequirePremium returns ErrPremiumRequired unless userID has the premium tier
func (s *ProfileService) RequirePremium(ctx context.Context, userID uint) error {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !p.IsPremium() {
		return ErrPremiumRequired
	}
	return nil
}

// SetSubscriptionTier changes the tier of userID
func (s *ProfileService) SetSubscriptionTier(ctx context.Context, userID uint, tier domain.SubscriptionTier) error {
	if !tier.Valid() {
		return invalid("subscription_tier", "must be free or premium")
	}
	if err := s.profiles.SetSubscriptionTier(ctx, userID, tier); err != nil {
		return storeErr("set subscription tier", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"tier":    tier,
	}).Info("Subscription tier changed")
	return nil
}

// Save writes the profile form. The first time a bankroll is entered while
// current_bankroll is still unset or zero, current_bankroll is seeded with it
// by a second, independent write whose failure only produces a warning.
func (s *ProfileService) Save(ctx context.Context, userID uint, upd ProfileUpdate) (*SaveResult, error) {
	if upd.InitialBankroll != nil {
		if err := staking.CheckRange(*upd.InitialBankroll); err != nil {
			return nil, invalid("initial_bankroll", "is out of range")
		}
		if upd.InitialBankroll.IsNegative() {
			return nil, invalid("initial_bankroll", "must not be negative")
		}
	}
	if upd.Currency == "" {
		upd.Currency = domain.CurrencyEUR
	}
	if !upd.Currency.Valid() {
		return nil, invalid("currency", "must be one of EUR, USD, GBP")
	}

	stored, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, storeErr("get profile", err)
	}

	p := stored
	if p == nil {
		p = domain.NewProfile(userID)
	} else {
		cp := *stored
		p = &cp
	}
	p.Username = upd.Username
	p.FullName = upd.FullName
	p.InitialBankroll = upd.InitialBankroll
	p.Currency = upd.Currency

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, storeErr("save profile", err)
	}

	result := &SaveResult{Profile: p}
	if !shouldSeedBankroll(upd.InitialBankroll, stored) {
		return result, nil
	}

	seed := *upd.InitialBankroll
	if err := s.profiles.UpdateCurrentBankroll(ctx, userID, seed); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  seed.String(),
			"error":   err.Error(),
		}).Warn("Could not seed current bankroll")
		result.Warning = &PartialSequenceError{
			Op:        "save profile",
			Completed: "profile fields saved",
			Err:       storeErr("seed current bankroll", err),
		}
		return result, nil
	}

	p.CurrentBankroll = &seed
	result.Seeded = true
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  seed.String(),
	}).Info("Current bankroll seeded")
	return result, nil
}

// shouldSeedBankroll holds when an initial bankroll is submitted and the
// stored current bankroll has never moved away from zero.
func shouldSeedBankroll(initial *decimal.Decimal, stored *domain.Profile) bool {
	if initial == nil {
		return false
	}
	return stored == nil || stored.CurrentBankroll == nil || stored.CurrentBankroll.IsZero()
}
