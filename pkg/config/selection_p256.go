//go:build ecc_p256

package config

// Building with more than one ecc_* tag redeclares buildCurve.
const buildCurve = "P-256"
