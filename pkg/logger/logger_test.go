package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Format: FormatJSON}, &buf)

	l.Info().Msg("hidden")
	l.Warn().Str("stage", "score").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "score", entry["stage"])
	assert.Equal(t, "shown", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewBadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "loud"}, &buf)

	l.Debug().Msg("debug")
	assert.Zero(t, buf.Len())

	l.Info().Msg("info")
	assert.NotZero(t, buf.Len())
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: FormatPretty}, &buf)

	l.Debug().Msg("pretty line")
	assert.Contains(t, buf.String(), "pretty line")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestWithContext(t *testing.T) {
	Init(Config{Level: "error"})
	ctx := WithContext(context.Background())
	assert.Equal(t, Logger.GetLevel(), Ctx(ctx).GetLevel())
}

func TestPackageEventsUseGlobalLogger(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	var buf bytes.Buffer
	Logger = New(Config{Level: "error", Format: FormatJSON}, &buf)

	Debug().Msg("hidden")
	Error().Str("path", "out/report.txt").Msg("report not written")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "out/report.txt", entry["path"])
}
