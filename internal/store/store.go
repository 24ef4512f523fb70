// Package store persists profiles, staking plans, bets and users with gorm
// and reads the aggregate statistics the database computes.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// notFound reports whether err means the row does not exist
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
