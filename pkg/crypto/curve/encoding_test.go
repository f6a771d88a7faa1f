package curve

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	for _, ct := range CurveTypes {
		t.Run(ct.String(), func(t *testing.T) {
			c := mustCurve(t, ct)
			size := (c.BitSize + 7) / 8

			for _, label := range []string{"m1", "m2", "m3", "m4"} {
				p := samplePoint(t, c, label)

				compressed, err := p.Marshal()
				require.NoError(t, err)
				assert.Len(t, compressed, 1+size)
				assert.Equal(t, compressed, p.Bytes())

				decoded, err := c.Unmarshal(compressed)
				require.NoError(t, err)
				assertPointEqual(t, p, decoded)

				uncompressed, err := p.MarshalUncompressed()
				require.NoError(t, err)
				assert.Len(t, uncompressed, 1+2*size)

				decoded, err = c.Unmarshal(uncompressed)
				require.NoError(t, err)
				assertPointEqual(t, p, decoded)
			}
		})
	}
}

func TestMarshalInfinity(t *testing.T) {
	c := mustCurve(t, P256)

	b, err := c.Infinity().Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, b)

	b, err = c.Infinity().MarshalUncompressed()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, b)

	p, err := c.Unmarshal([]byte{0x00})
	require.NoError(t, err)
	assert.True(t, p.IsInfinity())
}

func TestMarshalMatchesReference(t *testing.T) {
	for _, ct := range []CurveType{P256, P521} {
		t.Run(ct.String(), func(t *testing.T) {
			c := mustCurve(t, ct)
			p := samplePoint(t, c, "ref-enc")

			b, err := p.Marshal()
			require.NoError(t, err)
			assert.Equal(t, elliptic.MarshalCompressed(c.Reference(), p.X(), p.Y()), b)

			//nolint:staticcheck // elliptic.Marshal is the reference for the uncompressed form
			want := elliptic.Marshal(c.Reference(), p.X(), p.Y())
			b, err = p.MarshalUncompressed()
			require.NoError(t, err)
			assert.Equal(t, want, b)
		})
	}
}

func TestSecp256k1EncodingMatchesDecred(t *testing.T) {
	c := mustCurve(t, Secp256k1)

	for _, label := range []string{"e1", "e2"} {
		p := samplePoint(t, c, label)

		b, err := p.Marshal()
		require.NoError(t, err)

		pub, err := secp256k1.ParsePubKey(b)
		require.NoError(t, err)
		assert.Zero(t, pub.X().Cmp(p.X()))
		assert.Zero(t, pub.Y().Cmp(p.Y()))
		assert.Equal(t, pub.SerializeUncompressed(), mustMarshalUncompressed(t, p))

		decoded, err := c.Unmarshal(pub.SerializeCompressed())
		require.NoError(t, err)
		assertPointEqual(t, p, decoded)
	}
}

func mustMarshalUncompressed(t *testing.T, p *Point) []byte {
	t.Helper()
	b, err := p.MarshalUncompressed()
	require.NoError(t, err)
	return b
}

func TestUnmarshalErrors(t *testing.T) {
	c := mustCurve(t, P256)
	g := c.Generator()
	good, err := g.Marshal()
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := c.Unmarshal(nil)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("bad prefix", func(t *testing.T) {
		bad := append([]byte{}, good...)
		bad[0] = 0x05
		_, err := c.Unmarshal(bad)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := c.Unmarshal(good[:len(good)-1])
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("x out of range", func(t *testing.T) {
		bad := make([]byte, len(good))
		bad[0] = 0x02
		for i := 1; i < len(bad); i++ {
			bad[i] = 0xff
		}
		_, err := c.Unmarshal(bad)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("uncompressed off curve", func(t *testing.T) {
		b, err := g.MarshalUncompressed()
		require.NoError(t, err)
		b[len(b)-1] ^= 0x01
		_, err = c.Unmarshal(b)
		assert.ErrorIs(t, err, ErrInvalidPoint)
	})

	t.Run("wrong curve length", func(t *testing.T) {
		k1 := mustCurve(t, P521)
		_, err := k1.Unmarshal(good)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("off curve operand", func(t *testing.T) {
		_, err := NewPoint(c, big.NewInt(1), big.NewInt(1)).Marshal()
		assert.ErrorIs(t, err, ErrInvalidPoint)
		assert.Nil(t, NewPoint(c, big.NewInt(1), big.NewInt(1)).Bytes())
	})
}

func TestUnmarshalNonResidue(t *testing.T) {
	c := newToyCurve(t)

	// x = 4: 64 - 4 = 60 ≡ 14 mod 23, a non-residue
	_, err := c.Unmarshal([]byte{0x02, 0x04})
	assert.ErrorIs(t, err, ErrInvalidPoint)

	// (1, 0) has no odd y
	_, err = c.Unmarshal([]byte{0x03, 0x01})
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	p, err := c.Unmarshal([]byte{0x02, 0x01})
	require.NoError(t, err)
	assertPointEqual(t, NewPoint(c, big.NewInt(1), big.NewInt(0)), p)

	// G = (10, 1) is odd
	p, err = c.Unmarshal([]byte{0x03, 0x0a})
	require.NoError(t, err)
	assertPointEqual(t, c.Generator(), p)
}
