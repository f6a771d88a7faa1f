// Package security validates untrusted scalars and coordinates before they
// reach the point arithmetic.
package security

import (
	"errors"
	"math/big"
)

var (
	// ErrNilValue is returned when a required integer is nil
	ErrNilValue = errors.New("nil value provided")

	// ErrNegativeScalar is returned when a scalar is below zero
	ErrNegativeScalar = errors.New("scalar must be non-negative")

	// ErrZeroScalar is returned when a scalar must be non-zero but is zero
	ErrZeroScalar = errors.New("scalar is zero")

	// ErrInvalidRange is returned when a value is outside expected range
	ErrInvalidRange = errors.New("value out of valid range")
)

// ValidateScalar checks that a scalar multiplier is usable: non-nil and >= 0
func ValidateScalar(value *big.Int) error {
	if value == nil {
		return ErrNilValue
	}

	if value.Sign() < 0 {
		return ErrNegativeScalar
	}

	return nil
}

// ValidateScalarInRange checks if scalar is in valid range [1, max)
func ValidateScalarInRange(value, max *big.Int) error {
	if value == nil || max == nil {
		return ErrNilValue
	}

	if value.Sign() == 0 {
		return ErrZeroScalar
	}

	if value.Sign() < 0 || value.Cmp(max) >= 0 {
		return ErrInvalidRange
	}

	return nil
}

// ValidateCoordinate checks that a field element is canonical: 0 <= v < p
func ValidateCoordinate(value, p *big.Int) error {
	if value == nil || p == nil {
		return ErrNilValue
	}

	if value.Sign() < 0 || value.Cmp(p) >= 0 {
		return ErrInvalidRange
	}

	return nil
}
