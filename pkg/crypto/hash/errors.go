package hash

import "errors"

var (
	// ErrNilCurve is returned when a nil curve is provided
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrInvalidLength is returned when an invalid length is specified
	ErrInvalidLength = errors.New("length must be positive")

	// ErrEmptySeed is returned when deriving from an empty seed
	ErrEmptySeed = errors.New("seed cannot be empty")

	// ErrHashToCurveFailed is returned when hash-to-curve fails
	ErrHashToCurveFailed = errors.New("hash-to-curve failed to find valid point")
)
