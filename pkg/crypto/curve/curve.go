// Package curve implements affine point arithmetic on short Weierstrass curves
// y² = x³ + ax + b over a prime field, for the P-256, secp256k1 and P-521
// presets.
//
// Every Point carries the Curve it belongs to, so several curves can be used
// side by side in one process. Operations never mutate their operands and
// report invariant violations (off-curve operands, mixed curves, negative
// scalars) as errors instead of computing a wrong point.
//
// Nothing in this package runs in constant time. Do not feed it secret
// scalars where timing is observable.
package curve

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"strings"

	"github.com/Caqil/ecc/internal/math"
)

// CurveType identifies one of the supported named curves
type CurveType int

const (
	// CurveNone is the zero value and selects nothing
	CurveNone CurveType = iota
	// P256 is the NIST P-256 curve (secp256r1, prime256v1)
	P256
	// Secp256k1 is the Bitcoin/Ethereum curve
	Secp256k1
	// P521 is the NIST P-521 curve (secp521r1)
	P521
)

// CurveTypes lists every supported curve
var CurveTypes = []CurveType{P256, Secp256k1, P521}

// String returns the canonical curve name
func (t CurveType) String() string {
	switch t {
	case P256:
		return "P-256"
	case Secp256k1:
		return "secp256k1"
	case P521:
		return "P-521"
	case CurveNone:
		return "none"
	default:
		return fmt.Sprintf("CurveType(%d)", int(t))
	}
}

// ParseCurveType maps a configured name to a CurveType. Matching ignores case,
// dashes and underscores and accepts the common SEC/X9.62 aliases.
func ParseCurveType(name string) (CurveType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)

	switch key {
	case "":
		return CurveNone, ErrNoCurveSelected
	case "p256", "secp256r1", "prime256v1":
		return P256, nil
	case "secp256k1":
		return Secp256k1, nil
	case "p521", "secp521r1":
		return P521, nil
	default:
		return CurveNone, fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
	}
}

// Curve is the immutable descriptor of one curve: y² = x³ + ax + b mod p with
// generator (Gx, Gy) of order n. Descriptors are shared read-only by every
// point on the curve.
type Curve struct {
	// Name of the curve
	Name string

	// Type of the curve, CurveNone for curves built outside the presets
	Type CurveType

	// BitSize is the bit length of p
	BitSize int

	a, b, p, gx, gy, n *big.Int

	field *math.Field
	cubic *math.Polynomial
	ref   *reference
}

// NewCurve returns the shared descriptor of a preset curve. The preset is
// built and validated on first use.
func NewCurve(curveType CurveType) (*Curve, error) {
	switch curveType {
	case P256:
		return p256Preset()
	case Secp256k1:
		return secp256k1Preset()
	case P521:
		return p521Preset()
	case CurveNone:
		return nil, ErrNoCurveSelected
	default:
		return nil, ErrUnsupportedCurve
	}
}

// Lookup resolves a curve by name, see ParseCurveType
func Lookup(name string) (*Curve, error) {
	t, err := ParseCurveType(name)
	if err != nil {
		return nil, err
	}
	return NewCurve(t)
}

// curveParams are the six defining constants plus naming
type curveParams struct {
	name      string
	curveType CurveType
	a, b, p   string
	gx, gy, n string
	ref       *reference
}

// newCurve builds and validates a descriptor from hexadecimal constants
func newCurve(params curveParams) (*Curve, error) {
	c := &Curve{
		Name: params.name,
		Type: params.curveType,
		a:    math.MustParseHex(params.a),
		b:    math.MustParseHex(params.b),
		p:    math.MustParseHex(params.p),
		gx:   math.MustParseHex(params.gx),
		gy:   math.MustParseHex(params.gy),
		n:    math.MustParseHex(params.n),
		ref:  params.ref,
	}

	field, err := math.NewField(c.p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCurve, c.Name, err)
	}
	c.field = field
	c.BitSize = field.BitLen()

	cubic, err := math.NewWeierstrassCubic(c.a, c.b, field)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCurve, c.Name, err)
	}
	c.cubic = cubic

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the descriptor invariants: p is prime, the curve is
// non-singular, the generator lies on the curve and has order n, and the
// constants agree with the reference implementation of the same curve.
func (c *Curve) Validate() error {
	fail := func(reason string) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidCurve, c.Name, reason)
	}

	if !c.p.ProbablyPrime(20) {
		return fail("p is not prime")
	}
	if !c.field.Contains(c.a) || !c.field.Contains(c.b) {
		return fail("coefficients not reduced mod p")
	}

	// 4a³ + 27b² ≠ 0 mod p
	f := c.field
	disc := f.Add(f.Mul(big.NewInt(4), f.Cube(c.a)), f.Mul(big.NewInt(27), f.Square(c.b)))
	if disc.Sign() == 0 {
		return fail("curve is singular")
	}

	if !c.IsOnCurve(c.gx, c.gy) {
		return fail("generator is not on the curve")
	}
	if c.n.Cmp(big.NewInt(1)) <= 0 {
		return fail("order must be greater than one")
	}
	nG, err := c.Generator().ScalarMult(c.n)
	if err != nil {
		return fail(err.Error())
	}
	if !nG.IsInfinity() {
		return fail("n is not the order of the generator")
	}

	if c.ref != nil {
		if err := c.ref.check(c); err != nil {
			return fail(err.Error())
		}
	}

	return nil
}

// Field returns the base field of the curve
func (c *Curve) Field() *math.Field {
	return c.field
}

// A returns the coefficient a
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// B returns the coefficient b
func (c *Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

// P returns the field prime
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// Gx returns the x-coordinate of the generator
func (c *Curve) Gx() *big.Int {
	return new(big.Int).Set(c.gx)
}

// Gy returns the y-coordinate of the generator
func (c *Curve) Gy() *big.Int {
	return new(big.Int).Set(c.gy)
}

// N returns the order of the generator
func (c *Curve) N() *big.Int {
	return new(big.Int).Set(c.n)
}

// Order is an alias of N
func (c *Curve) Order() *big.Int {
	return c.N()
}

// Generator returns the base point G
func (c *Curve) Generator() *Point {
	return NewPoint(c, c.gx, c.gy)
}

// Infinity returns the identity element of the curve
func (c *Curve) Infinity() *Point {
	return NewInfinity(c)
}

// IsOnCurve reports whether y² ≡ x³ + ax + b mod p
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	return c.field.Equal(c.field.Square(y), c.cubic.Evaluate(x))
}

// Equal reports whether two descriptors define the same curve
func (c *Curve) Equal(other *Curve) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c == other {
		return true
	}
	return c.p.Cmp(other.p) == 0 &&
		c.a.Cmp(other.a) == 0 &&
		c.b.Cmp(other.b) == 0 &&
		c.gx.Cmp(other.gx) == 0 &&
		c.gy.Cmp(other.gy) == 0 &&
		c.n.Cmp(other.n) == 0
}

// Reference returns an independent implementation of the same curve, or nil
// for curves outside the presets
func (c *Curve) Reference() elliptic.Curve {
	if c.ref == nil {
		return nil
	}
	return c.ref.curve()
}

// String returns the curve name
func (c *Curve) String() string {
	return c.Name
}
