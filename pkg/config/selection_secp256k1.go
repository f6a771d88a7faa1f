//go:build ecc_secp256k1

package config

// Building with more than one ecc_* tag redeclares buildCurve.
const buildCurve = "secp256k1"
