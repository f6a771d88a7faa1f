package curve

import (
	"fmt"
	"math/big"

	"github.com/Caqil/ecc/internal/security"
)

// Negate returns -P: (x, p - y) for a finite point, infinity for infinity
func (p *Point) Negate() (*Point, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.curve.negate(p), nil
}

// Add returns P + Q. Both points must lie on the same curve.
func (p *Point) Add(q *Point) (*Point, error) {
	if err := sameCurve(p, q); err != nil {
		return nil, err
	}
	return p.curve.add(p, q)
}

// Sub returns P - Q
func (p *Point) Sub(q *Point) (*Point, error) {
	if err := sameCurve(p, q); err != nil {
		return nil, err
	}
	return p.curve.add(p, p.curve.negate(q))
}

// Double returns 2P. A point with y = 0 is its own inverse and doubles to
// infinity.
func (p *Point) Double() (*Point, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	return p.curve.double(p)
}

// ScalarMult returns kP for k >= 0 using right-to-left double-and-add.
//
// The number of additions depends on the bits of k. Use ScalarMultLadder when
// the sequence of group operations must not depend on k.
func (p *Point) ScalarMult(k *big.Int) (*Point, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if err := security.ValidateScalar(k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}

	c := p.curve
	r := c.Infinity()
	q := p
	var err error
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			if r, err = c.add(r, q); err != nil {
				return nil, err
			}
		}
		if q, err = c.double(q); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ScalarMultLadder returns kP for k >= 0 using a Montgomery ladder. Every bit
// position up to the bit length of the curve order costs exactly one addition
// and one doubling, whatever its value. The underlying big.Int arithmetic is
// still variable time.
func (p *Point) ScalarMultLadder(k *big.Int) (*Point, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if err := security.ValidateScalar(k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}

	c := p.curve
	bits := c.n.BitLen()
	if k.BitLen() > bits {
		bits = k.BitLen()
	}

	// invariant: r1 - r0 = P
	r0, r1 := c.Infinity(), p
	for i := bits - 1; i >= 0; i-- {
		sum, err := c.add(r0, r1)
		if err != nil {
			return nil, err
		}
		if k.Bit(i) == 0 {
			if r0, err = c.double(r0); err != nil {
				return nil, err
			}
			r1 = sum
		} else {
			if r1, err = c.double(r1); err != nil {
				return nil, err
			}
			r0 = sum
		}
	}
	return r0, nil
}

// ScalarBaseMult returns kG
func (c *Curve) ScalarBaseMult(k *big.Int) (*Point, error) {
	return c.Generator().ScalarMult(k)
}

// negate, add and double assume validated operands on c

func (c *Curve) negate(p *Point) *Point {
	if p.inf {
		return c.Infinity()
	}
	return NewPoint(c, c.field.Reduce(p.x), c.field.Neg(p.y))
}

func (c *Curve) add(p, q *Point) (*Point, error) {
	if p.inf {
		return q.Clone(), nil
	}
	if q.inf {
		return p.Clone(), nil
	}

	f := c.field
	if f.Equal(p.x, q.x) {
		if f.Equal(p.y, f.Neg(q.y)) {
			return c.Infinity(), nil
		}
		if f.Equal(p.y, q.y) {
			return c.double(p)
		}
		// equal x with unrelated y cannot happen on the curve
		return nil, ErrInvalidPoint
	}

	// λ = (y2 - y1) / (x2 - x1)
	inv, err := f.Inv(f.Sub(q.x, p.x))
	if err != nil {
		return nil, err
	}
	lambda := f.Mul(f.Sub(q.y, p.y), inv)

	// x3 = λ² - x1 - x2, y3 = λ(x1 - x3) - y1
	x3 := f.Sub(f.Sub(f.Square(lambda), p.x), q.x)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.x, x3)), p.y)

	return NewPoint(c, x3, y3), nil
}

func (c *Curve) double(p *Point) (*Point, error) {
	if p.inf {
		return c.Infinity(), nil
	}

	f := c.field
	if f.IsZero(p.y) {
		return c.Infinity(), nil
	}

	// λ = (3x² + a) / 2y
	inv, err := f.Inv(f.Double(p.y))
	if err != nil {
		return nil, err
	}
	lambda := f.Mul(f.Add(f.Triple(f.Square(p.x)), c.a), inv)

	// x' = λ² - 2x, y' = λ(x - x') - y
	x3 := f.Sub(f.Square(lambda), f.Double(p.x))
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.x, x3)), p.y)

	return NewPoint(c, x3, y3), nil
}
