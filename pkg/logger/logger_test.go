package logger

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObject struct{ name string }

func (o testObject) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", o.name)
}

func newBufferLogger(level string) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(&Config{Level: level, Output: buf}), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger("warn")

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	entry := decodeLine(t, buf)
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
}

func TestEventFields(t *testing.T) {
	l, buf := newBufferLogger("debug")

	l.InfoEvent().
		Str("curve", "P-256").
		Int("bits", 256).
		Hex("x", big.NewInt(255)).
		Scalar("k", new(big.Int).Lsh(big.NewInt(1), 100)).
		Object("point", testObject{name: "G"}).
		Msg("selected")

	entry := decodeLine(t, buf)
	assert.Equal(t, "P-256", entry["curve"])
	assert.EqualValues(t, 256, entry["bits"])
	assert.Equal(t, "ff", entry["x"])
	assert.Equal(t, "1000...<redacted>", entry["k"])
	assert.Equal(t, map[string]any{"name": "G"}, entry["point"])
}

func TestContextLogger(t *testing.T) {
	l, buf := newBufferLogger("info")

	child := l.With().Str("component", "config").Logger()
	child.Info("loaded")

	entry := decodeLine(t, buf)
	assert.Equal(t, "config", entry["component"])
}

func TestRedactSecret(t *testing.T) {
	assert.Equal(t, "<empty>", RedactSecret(""))
	assert.Equal(t, "<redacted>", RedactSecret("deadbeef"))
	assert.Equal(t, "dead...<redacted>", RedactSecret("deadbeefcafe"))
}

func TestNopDiscards(t *testing.T) {
	SetGlobalLogger(Nop())
	defer SetGlobalLogger(New(DefaultConfig()))

	Info("nothing")
	assert.NotNil(t, Global())
}
