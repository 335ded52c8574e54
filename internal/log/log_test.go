package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "json", "warn")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "status", 503)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, float64(503), line["status"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "text", "info")
	require.NoError(t, err)

	logger.Info("Starting upload proxy", "addr", ":8080")
	assert.Contains(t, buf.String(), "Starting upload proxy")
	assert.Contains(t, buf.String(), ":8080")
}

func TestNewLoggerErrors(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "xml", "info")
	assert.Error(t, err)

	_, err = newLogger(&bytes.Buffer{}, "json", "loud")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, lvl)
}
