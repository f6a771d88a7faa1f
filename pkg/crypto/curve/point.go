package curve

import (
	"fmt"
	"io"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/Caqil/ecc/internal/math"
	"github.com/Caqil/ecc/internal/security"
)

// Point is an affine point on a Curve, or the point at infinity of that
// curve. Points are immutable once constructed.
type Point struct {
	x, y  *big.Int
	inf   bool
	curve *Curve
}

// NewInfinity returns the identity element of c
func NewInfinity(c *Curve) *Point {
	return &Point{inf: true, curve: c}
}

// NewPoint returns the finite point (x, y) on c. The coordinates are copied
// but not checked against the curve equation; use NewPointChecked for
// untrusted input. Arithmetic rejects off-curve operands with ErrInvalidPoint.
func NewPoint(c *Curve, x, y *big.Int) *Point {
	p := &Point{curve: c}
	if x != nil {
		p.x = new(big.Int).Set(x)
	}
	if y != nil {
		p.y = new(big.Int).Set(y)
	}
	return p
}

// NewPointChecked returns the finite point (x, y) on c after checking that
// both coordinates are canonical field elements satisfying the curve equation
func NewPointChecked(c *Curve, x, y *big.Int) (*Point, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if err := security.ValidateCoordinate(x, c.p); err != nil {
		return nil, fmt.Errorf("%w: x: %v", ErrInvalidPoint, err)
	}
	if err := security.ValidateCoordinate(y, c.p); err != nil {
		return nil, fmt.Errorf("%w: y: %v", ErrInvalidPoint, err)
	}
	if !c.IsOnCurve(x, y) {
		return nil, ErrInvalidPoint
	}
	return NewPoint(c, x, y), nil
}

// X returns a copy of the x-coordinate, nil for the point at infinity
func (p *Point) X() *big.Int {
	if p.inf || p.x == nil {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y-coordinate, nil for the point at infinity
func (p *Point) Y() *big.Int {
	if p.inf || p.y == nil {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Curve returns the curve the point belongs to
func (p *Point) Curve() *Curve {
	return p.curve
}

// IsInfinity checks if point is the point at infinity
func (p *Point) IsInfinity() bool {
	return p.inf
}

// IsOnCurve reports whether the point satisfies its curve equation. The point
// at infinity is always on its curve.
func (p *Point) IsOnCurve() bool {
	if p == nil || p.curve == nil {
		return false
	}
	if p.inf {
		return true
	}
	return p.curve.IsOnCurve(p.x, p.y)
}

// Clone creates a deep copy of the point
func (p *Point) Clone() *Point {
	if p == nil {
		return nil
	}
	if p.inf {
		return NewInfinity(p.curve)
	}
	return NewPoint(p.curve, p.x, p.y)
}

// check rejects operands the arithmetic cannot handle
func (p *Point) check() error {
	if p == nil {
		return ErrNilPoint
	}
	if p.curve == nil {
		return ErrNilCurve
	}
	if !p.IsOnCurve() {
		return ErrInvalidPoint
	}
	return nil
}

// sameCurve checks both operands and that they share a curve
func sameCurve(p, q *Point) error {
	if err := p.check(); err != nil {
		return err
	}
	if err := q.check(); err != nil {
		return err
	}
	if !p.curve.Equal(q.curve) {
		return fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p.curve.Name, q.curve.Name)
	}
	return nil
}

// Equal reports whether p and q are the same group element: both the point at
// infinity, or both finite with x and y equal mod p. Points on different
// curves are never comparable and yield ErrCurveMismatch.
func (p *Point) Equal(q *Point) (bool, error) {
	if p == nil || q == nil {
		return false, ErrNilPoint
	}
	if p.curve == nil || q.curve == nil {
		return false, ErrNilCurve
	}
	if !p.curve.Equal(q.curve) {
		return false, fmt.Errorf("%w: %s and %s", ErrCurveMismatch, p.curve.Name, q.curve.Name)
	}

	if p.inf || q.inf {
		return p.inf == q.inf, nil
	}
	if p.x == nil || p.y == nil || q.x == nil || q.y == nil {
		return false, ErrInvalidPoint
	}

	f := p.curve.field
	return f.Equal(p.x, q.x) && f.Equal(p.y, q.y), nil
}

// IsEqual is Equal with every error reported as false
func (p *Point) IsEqual(q *Point) bool {
	eq, err := p.Equal(q)
	return err == nil && eq
}

// String renders the point for debugging. It is not an encoding.
func (p *Point) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.inf {
		return "Point at Infinity"
	}
	name := "?"
	if p.curve != nil {
		name = p.curve.Name
	}
	return fmt.Sprintf("%s(x=%s, y=%s)", name, math.FormatHex(p.x), math.FormatHex(p.y))
}

// Print writes the coordinates in hexadecimal, one per line
func (p *Point) Print(w io.Writer) error {
	if p.inf {
		_, err := fmt.Fprintln(w, "Point at Infinity")
		return err
	}
	_, err := fmt.Fprintf(w, "Point Coordinates:\nx = %s\ny = %s\n", math.FormatHex(p.x), math.FormatHex(p.y))
	return err
}

// MarshalZerologObject logs the point as {curve, infinity} or {curve, x, y}
func (p *Point) MarshalZerologObject(e *zerolog.Event) {
	if p.curve != nil {
		e.Str("curve", p.curve.Name)
	}
	if p.inf {
		e.Bool("infinity", true)
		return
	}
	e.Str("x", math.FormatHex(p.x)).Str("y", math.FormatHex(p.y))
}
