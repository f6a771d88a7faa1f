// Package hash provides cryptographic hash functions and deterministic
// derivation of scalars and curve points
package hash

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/Caqil/ecc/pkg/crypto/curve"
)

// HashFunction represents a cryptographic hash function
type HashFunction int

const (
	// SHA256 uses SHA-256 hash function
	SHA256 HashFunction = iota
	// SHA512 uses SHA-512 hash function
	SHA512
)

// securityMargin is the number of extra bits drawn before reducing modulo
// a group order or field prime, making the bias negligible
const securityMargin = 128

// Hash computes the hash of data using the specified hash function
func Hash(data []byte, hashFunc HashFunction) []byte {
	var h hash.Hash

	switch hashFunc {
	case SHA512:
		h = sha512.New()
	default:
		h = sha256.New()
	}

	h.Write(data)
	return h.Sum(nil)
}

// HashToScalar converts arbitrary data to an integer mod modulus
// Uses hash-and-reduce method: hash(data) mod modulus
func HashToScalar(data []byte, modulus *big.Int, hashFunc HashFunction) *big.Int {
	hashBytes := Hash(data, hashFunc)

	scalar := new(big.Int).SetBytes(hashBytes)
	scalar.Mod(scalar, modulus)

	return scalar
}

// HKDF derives key material using HKDF-SHA256
func HKDF(secret, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}

	hkdfReader := hkdf.New(sha256.New, secret, salt, info)

	key := make([]byte, length)
	if _, err := io.ReadFull(hkdfReader, key); err != nil {
		return nil, err
	}

	return key, nil
}

// DeriveScalar deterministically derives a scalar in [1, n) from seed,
// domain-separated by the curve name and info
func DeriveScalar(c *curve.Curve, seed, info []byte) (*big.Int, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	n := c.N()
	length := (n.BitLen() + securityMargin + 7) / 8

	salt := []byte("ecc-v1|derive-scalar|" + c.Name)
	okm, err := HKDF(seed, salt, info, length)
	if err != nil {
		return nil, err
	}

	// k mod (n-1) + 1 lands in [1, n)
	nMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	k := new(big.Int).SetBytes(okm)
	k.Mod(k, nMinusOne)
	return k.Add(k, big.NewInt(1)), nil
}

// HashPoints hashes multiple curve points into a single value using their
// compressed encodings. Nil points are skipped.
func HashPoints(points ...*curve.Point) []byte {
	h := sha256.New()
	for _, point := range points {
		if point != nil {
			h.Write(point.Bytes())
		}
	}
	return h.Sum(nil)
}
