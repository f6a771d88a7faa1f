// hash_to_curve.go maps byte strings to curve points with unknown discrete log
package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/Caqil/ecc/pkg/crypto/curve"
)

const (
	defaultDST = "ECC-V1-HASH-TO-CURVE"

	// maxAttempts bounds try-and-increment; each attempt succeeds with
	// probability about 1/2
	maxAttempts = 256
)

// HashToCurve maps data to a finite point on c. The x-coordinate is derived
// with expand_message_xmd (RFC 9380, SHA-256) and incremented until
// x³ + ax + b is a square; the even root is taken as y. This is deterministic
// but not one of the constant-time RFC 9380 suites.
func HashToCurve(data, dst []byte, c *curve.Curve) (*curve.Point, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if len(dst) == 0 {
		dst = []byte(defaultDST)
	}

	f := c.Field()
	length := (f.BitLen() + securityMargin + 7) / 8
	x := f.Reduce(new(big.Int).SetBytes(expandMessageXMD(data, dst, length)))

	one := big.NewInt(1)
	for i := 0; i < maxAttempts; i++ {
		rhs := f.Add(f.Add(f.Cube(x), f.Mul(c.A(), x)), c.B())

		if y, err := f.Sqrt(rhs); err == nil {
			if f.IsOdd(y) {
				y = f.Neg(y)
			}
			return curve.NewPointChecked(c, x, y)
		}

		x = f.Add(x, one)
	}

	return nil, ErrHashToCurveFailed
}

// expandMessageXMD implements expand_message_xmd from RFC 9380
// Uses SHA-256 as the hash function
func expandMessageXMD(msg, dst []byte, lenInBytes int) []byte {
	// b_in_bytes = 32 for SHA-256
	// ell = ceil(len_in_bytes / b_in_bytes)
	bInBytes := 32
	ell := (lenInBytes + bInBytes - 1) / bInBytes

	// DST_prime = DST || I2OSP(len(DST), 1)
	dstPrime := make([]byte, 0, len(dst)+1)
	dstPrime = append(dstPrime, dst...)
	dstPrime = append(dstPrime, byte(len(dst)))

	// Z_pad = I2OSP(0, r_in_bytes) where r_in_bytes = 64 for SHA-256
	zPad := make([]byte, 64)

	// msg_prime = Z_pad || msg || I2OSP(len_in_bytes, 2) || I2OSP(0, 1) || DST_prime
	msgPrime := make([]byte, 0, len(zPad)+len(msg)+2+1+len(dstPrime))
	msgPrime = append(msgPrime, zPad...)
	msgPrime = append(msgPrime, msg...)
	msgPrime = append(msgPrime, byte(lenInBytes>>8), byte(lenInBytes))
	msgPrime = append(msgPrime, 0)
	msgPrime = append(msgPrime, dstPrime...)

	// b_0 = H(msg_prime)
	h := sha256.New()
	h.Write(msgPrime)
	b0 := h.Sum(nil)

	// b_1 = H(b_0 || I2OSP(1, 1) || DST_prime)
	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	b1 := h.Sum(nil)

	uniformBytes := make([]byte, 0, ell*bInBytes)
	uniformBytes = append(uniformBytes, b1...)

	bi := b1
	for i := 2; i <= ell; i++ {
		// b_i = H(strxor(b_0, b_(i-1)) || I2OSP(i, 1) || DST_prime)
		h.Reset()

		strxor := make([]byte, bInBytes)
		for j := 0; j < bInBytes; j++ {
			strxor[j] = b0[j] ^ bi[j]
		}

		h.Write(strxor)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi = h.Sum(nil)

		uniformBytes = append(uniformBytes, bi...)
	}

	return uniformBytes[:lenInBytes]
}

// DeriveIndependentGenerators derives count points on c whose discrete logs
// with respect to G, and to each other, are unknown
func DeriveIndependentGenerators(c *curve.Curve, count int) ([]*curve.Point, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if count <= 0 {
		return nil, ErrInvalidLength
	}

	generators := make([]*curve.Point, count)

	for i := 0; i < count; i++ {
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(i))

		dst := append([]byte("ECC-V1-GENERATOR-"), buf...)
		msg := append([]byte(c.Name), buf...)

		point, err := HashToCurve(msg, dst, c)
		if err != nil {
			return nil, err
		}

		generators[i] = point
	}

	return generators, nil
}
