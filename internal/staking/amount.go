package staking

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned for amounts that do not fit the decimal columns
var ErrOutOfRange = errors.New("value out of range")

const (
	minExponent      = -8
	maxIntegerDigits = 12
)

// CheckRange rejects values with more than 12 integer digits or more than 8
// decimal places. It only reads the coefficient length and exponent, so it is
// safe to call on untrusted input before any comparison or arithmetic.
func CheckRange(d decimal.Decimal) error {
	exp := int(d.Exponent())
	if exp < minExponent || d.NumDigits()+exp > maxIntegerDigits {
		return ErrOutOfRange
	}
	return nil
}
