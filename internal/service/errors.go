package service

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable matches every *StoreError
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrPlanNotFound       = errors.New("staking plan not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrPremiumRequired    = errors.New("premium subscription required")
	ErrInvalidGrouping    = errors.New("group_by must be sport or bet_type")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError is malformed user input. Nothing was written.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// StoreError is a failed read or write against a backing store
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrStoreUnavailable) hold for any StoreError
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// PartialSequenceError reports that the second step of a two-step operation
// failed after the first one was applied. The state left behind is the
// documented safe one; the operation is not retried.
type PartialSequenceError struct {
	Op        string
	Completed string
	Err       error
}

func (e *PartialSequenceError) Error() string {
	return fmt.Sprintf("%s partially applied (%s): %v", e.Op, e.Completed, e.Err)
}

func (e *PartialSequenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a *ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsPartial reports whether err is a *PartialSequenceError
func IsPartial(err error) bool {
	var p *PartialSequenceError
	return errors.As(err, &p)
}
