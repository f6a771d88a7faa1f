package math

import "errors"

var (
	// ErrEmptyCoefficients is returned when coefficients slice is empty
	ErrEmptyCoefficients = errors.New("coefficients cannot be empty")

	// ErrInvalidModulus is returned when modulus is invalid
	ErrInvalidModulus = errors.New("modulus must be at least 2")

	// ErrInvalidHex is returned when a hexadecimal literal cannot be parsed
	ErrInvalidHex = errors.New("invalid hexadecimal integer")

	// ErrNilValue is returned when a nil field element is provided
	ErrNilValue = errors.New("field element cannot be nil")

	// ErrNotInvertible is returned when inverting zero modulo the field prime
	ErrNotInvertible = errors.New("value is not invertible modulo p")

	// ErrNoSquareRoot is returned when a value is a quadratic non-residue
	ErrNoSquareRoot = errors.New("value has no square root modulo p")
)
