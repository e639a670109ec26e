package logger

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(str, "")
}

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	defer buf.Free()
	return stripANSI(buf.String())
}

// The encoder must never drop fields, whatever their name or type.
func TestMinimalEncoderKeepsAllFields(t *testing.T) {
	ent := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2024, 1, 1, 13, 4, 35, 0, time.UTC),
		LoggerName: "vecgen.driver",
		Message:    "Generated unit",
	}

	out := encode(t, newMinimalEncoder(), ent,
		zap.String(FieldUnit, "Vector"),
		zap.Int(FieldCount, 3),
		zap.Bool("dry_run", false),
		zap.String("field.with.dots", "x"),
	)

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "v.driver")
	assert.Contains(t, out, "Generated unit")
	assert.Contains(t, out, "unit=Vector")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "dry_run=false")
	assert.Contains(t, out, "field.with.dots=x")
	assert.NotContains(t, out, "INFO")
}

func TestMinimalEncoderContextFields(t *testing.T) {
	enc := newMinimalEncoder()
	enc.AddString(FieldUnit, "Vector")
	clone := enc.Clone()
	clone.AddString(FieldPath, "include/Vector.h")

	ent := zapcore.Entry{Level: zapcore.WarnLevel, Time: time.Now(), Message: "stale"}

	out := encode(t, clone, ent)
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "unit=Vector")
	assert.Contains(t, out, "path=include/Vector.h")

	// Parent encoder is not affected by the clone
	parent := encode(t, enc, ent)
	assert.NotContains(t, parent, "path=")
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "v.driver", abbreviateName("vecgen.driver"))
	assert.Equal(t, "cli", abbreviateName("cli"))
}
