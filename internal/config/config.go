// Package config loads server and CLI settings from defaults, CMS_*
// environment variables and explicit overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the loader reads
const EnvPrefix = "CMS_"

// Config holds the settings shared by the MCP server and cmsctl
type Config struct {
	// WordPressURL is the REST root of a WordPress site, e.g. https://example.com/wp-json
	WordPressURL string `koanf:"wordpress_url" validate:"omitempty,url"`

	// StrapiURL is the REST root of the ACF-enabled site read by id
	StrapiURL string `koanf:"strapi_url" validate:"omitempty,url"`

	Timeout   time.Duration `koanf:"timeout" validate:"gt=0"`
	UserAgent string        `koanf:"user_agent" validate:"required"`
	LogLevel  string        `koanf:"log_level" validate:"oneof=debug info warn error"`

	// MetricsAddr enables the Prometheus listener when set, e.g. :9090
	MetricsAddr string `koanf:"metrics_addr"`
}

// Default returns the built-in defaults
func Default() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		UserAgent: "headless-cms-mcp-server/1.0",
		LogLevel:  "info",
	}
}

// Load builds a Config. Overrides are keyed by koanf tag and win over the
// environment; empty string values are ignored so unset CLI flags don't
// clobber it.
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// transformEnvKey maps CMS_WORDPRESS_URL to wordpress_url
func transformEnvKey(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	return strings.ToLower(key), value
}

var validate = validator.New()

// ErrNoBackend is returned when neither backend URL is configured
var ErrNoBackend = errors.New("at least one of wordpress_url or strapi_url is required")

// Validate checks field constraints and that a backend is configured
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.WordPressURL == "" && c.StrapiURL == "" {
		return ErrNoBackend
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
