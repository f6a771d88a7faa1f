//go:build !ecc_p256 && !ecc_secp256k1 && !ecc_p521

package config

const buildCurve = ""
