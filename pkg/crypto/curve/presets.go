package curve

import (
	"crypto/elliptic"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Constants from SEC 2 v2 and FIPS 186-4.
var (
	p256Params = curveParams{
		name:      "P-256",
		curveType: P256,
		a:         "ffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
		b:         "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		p:         "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		gx:        "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		gy:        "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
		n:         "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
		ref:       &reference{curve: elliptic.P256, aIsMinusThree: true},
	}

	secp256k1Params = curveParams{
		name:      "secp256k1",
		curveType: Secp256k1,
		a:         "0",
		b:         "7",
		p:         "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		gx:        "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		gy:        "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		n:         "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		ref:       &reference{curve: func() elliptic.Curve { return btcec.S256() }},
	}

	p521Params = curveParams{
		name:      "P-521",
		curveType: P521,
		a:         "01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffc",
		b:         "0051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00",
		p:         "01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		gx:        "00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66",
		gy:        "011839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650",
		n:         "01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409",
		ref:       &reference{curve: elliptic.P521, aIsMinusThree: true},
	}
)

var (
	p256Preset      = sync.OnceValues(func() (*Curve, error) { return newCurve(p256Params) })
	secp256k1Preset = sync.OnceValues(func() (*Curve, error) { return newCurve(secp256k1Params) })
	p521Preset      = sync.OnceValues(func() (*Curve, error) { return newCurve(p521Params) })
)
