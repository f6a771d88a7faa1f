package math

import (
	"math/big"
	"strconv"
)

// Polynomial represents a polynomial over a prime field
// f(x) = coefficients[0] + coefficients[1]*x + coefficients[2]*x^2 + ...
type Polynomial struct {
	// Coefficients in ascending order (index 0 is constant term)
	Coefficients []*big.Int

	field *Field
}

// NewPolynomial creates a new polynomial with given coefficients over f
func NewPolynomial(coefficients []*big.Int, f *Field) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, ErrEmptyCoefficients
	}
	if f == nil {
		return nil, ErrInvalidModulus
	}

	// Normalize coefficients to field
	normalized := make([]*big.Int, len(coefficients))
	for i, coef := range coefficients {
		if coef == nil {
			normalized[i] = big.NewInt(0)
		} else {
			normalized[i] = f.Reduce(coef)
		}
	}

	return &Polynomial{
		Coefficients: normalized,
		field:        f,
	}, nil
}

// NewWeierstrassCubic returns x³ + ax + b over f, the right-hand side of the
// short Weierstrass equation y² = x³ + ax + b.
func NewWeierstrassCubic(a, b *big.Int, f *Field) (*Polynomial, error) {
	return NewPolynomial([]*big.Int{b, a, big.NewInt(0), big.NewInt(1)}, f)
}

// Degree returns the degree of the polynomial
func (p *Polynomial) Degree() int {
	// Find highest non-zero coefficient
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		if p.Coefficients[i].Sign() != 0 {
			return i
		}
	}
	return 0
}

// Evaluate evaluates the polynomial at point x: f(x) mod p
// Uses Horner's method
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	n := len(p.Coefficients)
	if x == nil || n == 0 {
		return big.NewInt(0)
	}

	xMod := p.field.Reduce(x)

	// Horner's method: f(x) = a₀ + x(a₁ + x(a₂ + x(a₃ + ...)))
	result := new(big.Int).Set(p.Coefficients[n-1])
	for i := n - 2; i >= 0; i-- {
		result = p.field.Add(p.field.Mul(result, xMod), p.Coefficients[i])
	}

	return result
}

// IsZero checks if polynomial is the zero polynomial
func (p *Polynomial) IsZero() bool {
	for _, coef := range p.Coefficients {
		if coef.Sign() != 0 {
			return false
		}
	}
	return true
}

// String returns a string representation of the polynomial (for debugging)
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}

	result := ""
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		if p.Coefficients[i].Sign() == 0 {
			continue
		}

		if result != "" {
			result += " + "
		}

		coef := FormatHex(p.Coefficients[i])
		switch {
		case i == 0:
			result += coef
		case i == 1 && coef == "1":
			result += "x"
		case i == 1:
			result += coef + "x"
		case coef == "1":
			result += "x^" + strconv.Itoa(i)
		default:
			result += coef + "x^" + strconv.Itoa(i)
		}
	}

	return result
}
