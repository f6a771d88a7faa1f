package curve

import (
	"fmt"
	"math/big"
)

// SEC 1 point encoding prefixes
const (
	prefixInfinity     byte = 0x00
	prefixEven         byte = 0x02
	prefixOdd          byte = 0x03
	prefixUncompressed byte = 0x04
)

// Bytes returns the compressed encoding of the point
func (p *Point) Bytes() []byte {
	b, err := p.Marshal()
	if err != nil {
		return nil
	}
	return b
}

// Marshal returns the SEC 1 compressed encoding: 0x02 or 0x03 followed by x.
// The point at infinity encodes as the single byte 0x00.
func (p *Point) Marshal() ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if p.inf {
		return []byte{prefixInfinity}, nil
	}

	f := p.curve.field
	size := f.ByteLen()
	out := make([]byte, 1+size)
	out[0] = prefixEven
	if f.IsOdd(p.y) {
		out[0] = prefixOdd
	}
	f.Reduce(p.x).FillBytes(out[1:])
	return out, nil
}

// MarshalUncompressed returns the SEC 1 uncompressed encoding 0x04 || x || y
func (p *Point) MarshalUncompressed() ([]byte, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	if p.inf {
		return []byte{prefixInfinity}, nil
	}

	f := p.curve.field
	size := f.ByteLen()
	out := make([]byte, 1+2*size)
	out[0] = prefixUncompressed
	f.Reduce(p.x).FillBytes(out[1 : 1+size])
	f.Reduce(p.y).FillBytes(out[1+size:])
	return out, nil
}

// Unmarshal decodes any SEC 1 encoding produced by Marshal or
// MarshalUncompressed and checks that the result lies on c
func (c *Curve) Unmarshal(data []byte) (*Point, error) {
	size := c.field.ByteLen()

	switch {
	case len(data) == 1 && data[0] == prefixInfinity:
		return c.Infinity(), nil

	case len(data) == 1+size && (data[0] == prefixEven || data[0] == prefixOdd):
		x := new(big.Int).SetBytes(data[1:])
		if !c.field.Contains(x) {
			return nil, fmt.Errorf("%w: x out of range", ErrInvalidEncoding)
		}
		y, err := c.field.Sqrt(c.cubic.Evaluate(x))
		if err != nil {
			return nil, fmt.Errorf("%w: x is not on the curve", ErrInvalidPoint)
		}
		if c.field.IsOdd(y) != (data[0] == prefixOdd) {
			y = c.field.Neg(y)
		}
		if c.field.IsOdd(y) != (data[0] == prefixOdd) {
			// y = 0 has no odd root
			return nil, fmt.Errorf("%w: no root with requested parity", ErrInvalidEncoding)
		}
		return NewPoint(c, x, y), nil

	case len(data) == 1+2*size && data[0] == prefixUncompressed:
		x := new(big.Int).SetBytes(data[1 : 1+size])
		y := new(big.Int).SetBytes(data[1+size:])
		return NewPointChecked(c, x, y)

	default:
		return nil, ErrInvalidEncoding
	}
}
