package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondrasimku/upload-proxy-go/internal/storage/catbox"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"UPLOAD_HTTP_ADDR", "UPLOAD_ENDPOINT", "UPLOAD_USER_AGENT", "UPLOAD_TIMEOUT",
		"UPLOAD_LOCALE", "LOG_FORMAT", "LOG_LEVEL", "METRICS_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, catbox.DefaultEndpoint, cfg.Upstream.Endpoint)
	assert.Equal(t, catbox.DefaultUserAgent, cfg.Upstream.UserAgent)
	assert.Zero(t, cfg.Upstream.Timeout)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("UPLOAD_HTTP_ADDR", ":9090")
	t.Setenv("UPLOAD_ENDPOINT", "http://localhost:1234/api.php")
	t.Setenv("UPLOAD_USER_AGENT", "agent/2")
	t.Setenv("UPLOAD_TIMEOUT", "1m30s")
	t.Setenv("UPLOAD_LOCALE", "id")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "id", cfg.Locale)
	assert.Equal(t, "http://localhost:1234/api.php", cfg.Upstream.Endpoint)
	assert.Equal(t, "agent/2", cfg.Upstream.UserAgent)
	assert.Equal(t, 90*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timeout", "UPLOAD_TIMEOUT", "soon"},
		{"negative timeout", "UPLOAD_TIMEOUT", "-5"},
		{"bad metrics flag", "METRICS_ENABLED", "maybe"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"bad log level", "LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("30")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	d, err = parseDuration("250ms")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	_, err = parseDuration("-1s")
	assert.Error(t, err)
}
