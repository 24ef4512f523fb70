package service

import (
	"context"
	"regexp"
	"strings"

	"bet_assist/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z]+$`)

const (
	minPasswordLen = 8
	maxPasswordLen = 15
)

// UserAccount is a user as listed to admins
type UserAccount struct {
	ID               uint                    `json:"id"`
	Username         string                  `json:"username"`
	Role             string                  `json:"role"`
	SubscriptionTier domain.SubscriptionTier `json:"subscription_tier"`
	Currency         domain.Currency         `json:"currency"`
}

// UserPage is one page of UserAccount
type UserPage struct {
	Users      []UserAccount `json:"users"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"total_pages"`
}

// UserService registers and authenticates users
type UserService struct {
	users UserRepository
	cost  int
}

// NewUserService creates a new user service
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users, cost: bcrypt.DefaultCost}
}

// Register creates an account. Usernames are alphabetic and stored lower-case.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, invalid("username", "must be alphabetic only")
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return nil, invalid("password", "must be 8-15 characters")
	}
	username = strings.ToLower(username)

	existing, err := s.users.ByUsername(ctx, username)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Username: username, Password: string(hash), Role: domain.RoleUser}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, storeErr("create user", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User registered")
	return user, nil
}

// Authenticate returns the user matching username and password
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.ByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, storeErr("get user", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ByID returns the user with id
func (s *UserService) ByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.users.ByID(ctx, id)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// IsAdmin reports whether id is an admin account
func (s *UserService) IsAdmin(ctx context.Context, id uint) (bool, error) {
	user, err := s.ByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

// List returns page (1-based) of the accounts with their subscription tier
func (s *UserService) List(ctx context.Context, page, pageSize int) (*UserPage, error) {
	users, total, err := s.users.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	out := &UserPage{
		Users:      make([]UserAccount, len(users)),
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (int(total) + pageSize - 1) / pageSize,
	}
	for i, u := range users {
		tier, currency := domain.TierFree, domain.CurrencyEUR
		if u.Profile.UserID != 0 {
			tier, currency = u.Profile.SubscriptionTier, u.Profile.Currency
		}
		out.Users[i] = UserAccount{
			ID:               u.ID,
			Username:         u.Username,
			Role:             u.Role,
			SubscriptionTier: tier,
			Currency:         currency,
		}
	}
	return out, nil
}
