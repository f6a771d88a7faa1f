// Package config selects the curve a process works on and configures its
// logger. The curve comes, in increasing precedence, from the build tag
// (ecc_p256, ecc_secp256k1 or ecc_p521), a YAML file and the ECC_CURVE
// environment variable. There is no fallback curve.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Caqil/ecc/pkg/crypto/curve"
	"github.com/Caqil/ecc/pkg/logger"
)

const (
	// EnvCurve overrides the selected curve
	EnvCurve = "ECC_CURVE"
	// EnvLogLevel overrides the log level
	EnvLogLevel = "ECC_LOG_LEVEL"
)

// Config holds the process-wide settings
type Config struct {
	// Curve is a curve name accepted by curve.ParseCurveType
	Curve string `yaml:"curve"`

	// Log configures the logger
	Log *logger.Config `yaml:"log"`
}

// BuildCurve returns the curve chosen by build tag, empty when none was set
func BuildCurve() string {
	return buildCurve
}

// DefaultConfig returns the build-tag selection and the logger defaults
func DefaultConfig() *Config {
	return &Config{
		Curve: buildCurve,
		Log:   logger.DefaultConfig(),
	}
}

// LoadFile reads a YAML file on top of DefaultConfig
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of DefaultConfig. Keys absent from data keep their
// defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.fillLogDefaults()
	return cfg, nil
}

func (c *Config) fillLogDefaults() {
	def := logger.DefaultConfig()
	if c.Log == nil {
		c.Log = def
		return
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Level
	}
	if c.Log.Output == nil {
		c.Log.Output = def.Output
	}
	if c.Log.TimeFormat == "" {
		c.Log.TimeFormat = def.TimeFormat
	}
}

// ApplyEnv overrides fields from ECC_CURVE and ECC_LOG_LEVEL when set
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvCurve); ok && strings.TrimSpace(v) != "" {
		c.Curve = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.fillLogDefaults()
		c.Log.Level = v
	}
}

// Validate checks that exactly one supported curve is selected
func (c *Config) Validate() error {
	_, err := curve.ParseCurveType(c.Curve)
	return err
}

// CurveType returns the parsed curve selection
func (c *Config) CurveType() (curve.CurveType, error) {
	return curve.ParseCurveType(c.Curve)
}

// Logger builds the configured logger
func (c *Config) Logger() *logger.Logger {
	return logger.New(c.Log)
}

// SelectCurve resolves the configured curve descriptor and logs the choice
func (c *Config) SelectCurve() (*curve.Curve, error) {
	log := c.Logger()

	ct, err := c.CurveType()
	if err != nil {
		log.ErrorEvent().Str("curve", c.Curve).Err(err).Msg("curve selection failed")
		return nil, err
	}

	crv, err := curve.NewCurve(ct)
	if err != nil {
		log.ErrorEvent().Str("curve", ct.String()).Err(err).Msg("curve setup failed")
		return nil, err
	}

	log.InfoEvent().
		Str("curve", crv.Name).
		Int("bits", crv.BitSize).
		Hex("order", crv.N()).
		Object("generator", crv.Generator()).
		Msg("curve selected")

	return crv, nil
}
