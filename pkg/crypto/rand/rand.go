// Package rand provides cryptographically secure random scalars and points
package rand

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/Caqil/ecc/pkg/crypto/curve"
)

// Reader is the default cryptographically secure random number generator.
// Tests may swap it for a deterministic source.
var Reader io.Reader = rand.Reader

// GenerateRandomBytes generates n cryptographically secure random bytes
func GenerateRandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	bytes := make([]byte, n)
	if _, err := io.ReadFull(Reader, bytes); err != nil {
		return nil, err
	}

	return bytes, nil
}

// GenerateRandomScalar generates a uniform random scalar in range [1, max)
func GenerateRandomScalar(max *big.Int) (*big.Int, error) {
	if max == nil {
		return nil, ErrNilMax
	}

	// [1, max) is empty for max <= 1
	if max.Cmp(big.NewInt(1)) <= 0 {
		return nil, ErrInvalidMax
	}

	// uniform in [0, max-1), shifted by one
	bound := new(big.Int).Sub(max, big.NewInt(1))
	value, err := rand.Int(Reader, bound)
	if err != nil {
		return nil, err
	}

	return value.Add(value, big.NewInt(1)), nil
}

// RandomScalar returns a uniform non-zero scalar modulo the order of c
func RandomScalar(c *curve.Curve) (*big.Int, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	return GenerateRandomScalar(c.N())
}

// RandomPoint returns kG for a fresh random scalar k. The point is never the
// identity.
func RandomPoint(c *curve.Curve) (*curve.Point, *big.Int, error) {
	k, err := RandomScalar(c)
	if err != nil {
		return nil, nil, err
	}

	p, err := c.ScalarBaseMult(k)
	if err != nil {
		return nil, nil, err
	}

	return p, k, nil
}
