// Package math provides the modular arithmetic the curve package is built on.
// Values are *big.Int and are never mutated by the operations; every result is
// a freshly allocated integer in [0, p).
package math

import (
	"math/big"
	"strings"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Field is the prime field Z/pZ
type Field struct {
	p *big.Int
}

// NewField creates the field of integers modulo p
func NewField(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(two) < 0 {
		return nil, ErrInvalidModulus
	}
	return &Field{p: new(big.Int).Set(p)}, nil
}

// ParseHex parses a radix-16 integer, with or without a 0x prefix
func ParseHex(s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, ErrInvalidHex
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return nil, ErrInvalidHex
	}
	return v, nil
}

// MustParseHex is ParseHex for compile-time literals. It panics on malformed input.
func MustParseHex(s string) *big.Int {
	v, err := ParseHex(s)
	if err != nil {
		panic("math: bad hex literal " + s)
	}
	return v
}

// FormatHex renders v in lower-case radix 16 without a prefix
func FormatHex(v *big.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.Text(16)
}

// Modulus returns a copy of p
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitLen returns the bit length of p
func (f *Field) BitLen() int {
	return f.p.BitLen()
}

// ByteLen returns the number of bytes needed to hold any element
func (f *Field) ByteLen() int {
	return (f.p.BitLen() + 7) / 8
}

// Contains reports whether 0 <= v < p
func (f *Field) Contains(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(f.p) < 0
}

// Reduce returns v mod p
func (f *Field) Reduce(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, f.p)
}

// Add returns a + b mod p
func (f *Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

// Sub returns a - b mod p
func (f *Field) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

// Mul returns a * b mod p
func (f *Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

// Square returns a² mod p
func (f *Field) Square(a *big.Int) *big.Int {
	return f.Mul(a, a)
}

// Cube returns a³ mod p
func (f *Field) Cube(a *big.Int) *big.Int {
	return f.Mul(f.Square(a), a)
}

// Double returns 2a mod p
func (f *Field) Double(a *big.Int) *big.Int {
	return f.Mul(a, two)
}

// Triple returns 3a mod p
func (f *Field) Triple(a *big.Int) *big.Int {
	return f.Mul(a, three)
}

// Neg returns p - a mod p
func (f *Field) Neg(a *big.Int) *big.Int {
	r := new(big.Int).Sub(f.p, f.Reduce(a))
	return r.Mod(r, f.p)
}

// Inv returns a⁻¹ mod p
func (f *Field) Inv(a *big.Int) (*big.Int, error) {
	if a == nil {
		return nil, ErrNilValue
	}
	r := f.Reduce(a)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}
	if r.ModInverse(r, f.p) == nil {
		return nil, ErrNotInvertible
	}
	return r, nil
}

// Sqrt returns a square root of a mod p. Which of the two roots is returned
// is unspecified; callers pick the parity they need.
func (f *Field) Sqrt(a *big.Int) (*big.Int, error) {
	if a == nil {
		return nil, ErrNilValue
	}
	r := new(big.Int).ModSqrt(f.Reduce(a), f.p)
	if r == nil {
		return nil, ErrNoSquareRoot
	}
	return r, nil
}

// Equal reports whether a ≡ b mod p
func (f *Field) Equal(a, b *big.Int) bool {
	return f.Reduce(a).Cmp(f.Reduce(b)) == 0
}

// IsZero reports whether a ≡ 0 mod p
func (f *Field) IsZero(a *big.Int) bool {
	return f.Reduce(a).Sign() == 0
}

// IsOdd reports whether the canonical representative of a is odd
func (f *Field) IsOdd(a *big.Int) bool {
	return f.Reduce(a).Bit(0) == 1
}
