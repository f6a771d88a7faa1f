package hash

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/ecc/pkg/crypto/curve"
)

func mustCurve(t *testing.T, ct curve.CurveType) *curve.Curve {
	t.Helper()
	c, err := curve.NewCurve(ct)
	require.NoError(t, err)
	return c
}

func TestHash(t *testing.T) {
	assert.Len(t, Hash([]byte("abc"), SHA256), 32)
	assert.Len(t, Hash([]byte("abc"), SHA512), 64)
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(Hash([]byte("abc"), SHA256)))
}

func TestHashToScalar(t *testing.T) {
	mod := big.NewInt(1000003)
	s := HashToScalar([]byte("data"), mod, SHA256)
	assert.True(t, s.Cmp(mod) < 0)
	assert.Zero(t, s.Cmp(HashToScalar([]byte("data"), mod, SHA256)))
}

func TestHKDF(t *testing.T) {
	a, err := HKDF([]byte("secret"), []byte("salt"), []byte("info"), 48)
	require.NoError(t, err)
	assert.Len(t, a, 48)

	b, err := HKDF([]byte("secret"), []byte("salt"), []byte("other"), 48)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = HKDF([]byte("secret"), nil, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestDeriveScalar(t *testing.T) {
	for _, ct := range curve.CurveTypes {
		t.Run(ct.String(), func(t *testing.T) {
			c := mustCurve(t, ct)

			k1, err := DeriveScalar(c, []byte("seed"), []byte("k1"))
			require.NoError(t, err)
			k1Again, err := DeriveScalar(c, []byte("seed"), []byte("k1"))
			require.NoError(t, err)
			k2, err := DeriveScalar(c, []byte("seed"), []byte("k2"))
			require.NoError(t, err)

			assert.Zero(t, k1.Cmp(k1Again))
			assert.NotZero(t, k1.Cmp(k2))
			for _, k := range []*big.Int{k1, k2} {
				assert.Equal(t, 1, k.Sign())
				assert.Equal(t, -1, k.Cmp(c.N()))
			}
		})
	}
}

func TestDeriveScalarErrors(t *testing.T) {
	_, err := DeriveScalar(nil, []byte("seed"), nil)
	assert.ErrorIs(t, err, ErrNilCurve)

	_, err = DeriveScalar(mustCurve(t, curve.P256), nil, nil)
	assert.ErrorIs(t, err, ErrEmptySeed)
}

func TestExpandMessageXMDVectors(t *testing.T) {
	// RFC 9380 appendix K.1
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")

	tests := []struct {
		msg  string
		want string
	}{
		{"", "68a985b87eb6b46952128911f2a4412bbc302a9d759667f87f7a21d803f07235"},
		{"abc", "d8ccab23b5985ccea865c6c97b6e5b8350e794e603b4b97902f53a8a0d605615"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			got := expandMessageXMD([]byte(tt.msg), dst, 32)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}

	assert.Len(t, expandMessageXMD([]byte("abc"), dst, 98), 98)
}

func TestExpandMessageXMDDoesNotAliasDST(t *testing.T) {
	backing := make([]byte, 4, 16)
	copy(backing, "dst!")
	dst := backing[:4]

	expandMessageXMD([]byte("m"), dst, 32)
	assert.Equal(t, byte(0), backing[:5][4])
}

func TestHashToCurve(t *testing.T) {
	for _, ct := range curve.CurveTypes {
		t.Run(ct.String(), func(t *testing.T) {
			c := mustCurve(t, ct)

			p, err := HashToCurve([]byte("hello"), nil, c)
			require.NoError(t, err)
			assert.True(t, p.IsOnCurve())
			assert.False(t, p.IsInfinity())
			assert.Equal(t, uint(0), p.Y().Bit(0))

			again, err := HashToCurve([]byte("hello"), nil, c)
			require.NoError(t, err)
			assert.True(t, p.IsEqual(again))

			other, err := HashToCurve([]byte("hello"), []byte("other-dst"), c)
			require.NoError(t, err)
			assert.False(t, p.IsEqual(other))

			// a hashed point behaves like any other group element
			inf, err := p.ScalarMult(c.N())
			require.NoError(t, err)
			assert.True(t, inf.IsInfinity())
		})
	}

	_, err := HashToCurve([]byte("x"), nil, nil)
	assert.ErrorIs(t, err, ErrNilCurve)
}

func TestDeriveIndependentGenerators(t *testing.T) {
	c := mustCurve(t, curve.Secp256k1)

	gens, err := DeriveIndependentGenerators(c, 3)
	require.NoError(t, err)
	require.Len(t, gens, 3)

	for i := range gens {
		assert.False(t, gens[i].IsEqual(c.Generator()))
		for j := i + 1; j < len(gens); j++ {
			assert.False(t, gens[i].IsEqual(gens[j]))
		}
	}

	_, err = DeriveIndependentGenerators(c, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestHashPoints(t *testing.T) {
	c := mustCurve(t, curve.P256)
	g := c.Generator()
	g2, err := g.Double()
	require.NoError(t, err)

	assert.Equal(t, HashPoints(g, g2), HashPoints(g, nil, g2))
	assert.NotEqual(t, HashPoints(g, g2), HashPoints(g2, g))
}
