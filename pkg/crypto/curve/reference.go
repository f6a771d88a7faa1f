package curve

import (
	"crypto/elliptic"
	"errors"
	"math/big"
)

// reference ties a preset to an independent implementation of the same curve
// (crypto/elliptic for the NIST curves, btcec for secp256k1) whose parameters
// must match ours exactly.
type reference struct {
	curve func() elliptic.Curve

	// NIST curves fix a = -3 and elliptic.CurveParams does not carry a
	aIsMinusThree bool
}

func (r *reference) check(c *Curve) error {
	params := r.curve().Params()

	switch {
	case params.P.Cmp(c.p) != 0:
		return errors.New("p differs from reference")
	case params.N.Cmp(c.n) != 0:
		return errors.New("n differs from reference")
	case params.B.Cmp(c.b) != 0:
		return errors.New("b differs from reference")
	case params.Gx.Cmp(c.gx) != 0 || params.Gy.Cmp(c.gy) != 0:
		return errors.New("generator differs from reference")
	case params.BitSize != c.BitSize:
		return errors.New("bit size differs from reference")
	}

	if r.aIsMinusThree {
		if c.field.Add(c.a, big.NewInt(3)).Sign() != 0 {
			return errors.New("a is not -3")
		}
	} else if c.a.Sign() != 0 {
		return errors.New("a is not 0")
	}

	return nil
}
