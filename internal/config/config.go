package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ondrasimku/upload-proxy-go/internal/log"
	"github.com/ondrasimku/upload-proxy-go/internal/storage/catbox"
)

type Config struct {
	HTTPAddr string
	Locale   string
	Upstream UpstreamConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

type UpstreamConfig struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration // 0 means no local timeout
}

type LogConfig struct {
	Format string
	Level  string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads an optional .env file from the working directory and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("UPLOAD_HTTP_ADDR", ":8080")
	v.SetDefault("UPLOAD_ENDPOINT", catbox.DefaultEndpoint)
	v.SetDefault("UPLOAD_USER_AGENT", catbox.DefaultUserAgent)
	v.SetDefault("UPLOAD_TIMEOUT", "0")
	v.SetDefault("UPLOAD_LOCALE", "en")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_ENABLED", "false")

	timeout, err := parseDuration(v.GetString("UPLOAD_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_TIMEOUT: %w", err)
	}

	metricsEnabled, err := strconv.ParseBool(v.GetString("METRICS_ENABLED"))
	if err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	format := v.GetString("LOG_FORMAT")
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", format)
	}

	level := v.GetString("LOG_LEVEL")
	if _, err := log.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		HTTPAddr: v.GetString("UPLOAD_HTTP_ADDR"),
		Locale:   v.GetString("UPLOAD_LOCALE"),
		Upstream: UpstreamConfig{
			Endpoint:  v.GetString("UPLOAD_ENDPOINT"),
			UserAgent: v.GetString("UPLOAD_USER_AGENT"),
			Timeout:   timeout,
		},
		Log: LogConfig{
			Format: format,
			Level:  level,
		},
		Metrics: MetricsConfig{
			Enabled: metricsEnabled,
		},
	}, nil
}

// parseDuration accepts plain integers as seconds or Go duration strings like "90s".
func parseDuration(val string) (time.Duration, error) {
	if secs, err := strconv.Atoi(val); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("must not be negative")
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return d, nil
}
