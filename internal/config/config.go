// Package config loads server settings from environment variables,
// layered over an optional YAML file (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port int    `koanf:"port"`
	Env  string `koanf:"env"`

	MetricsEnabled bool   `koanf:"metrics_enabled"`
	MetricsToken   string `koanf:"metrics_token"`

	// RateLimit 0 disables rate limiting.
	RateLimit              int `koanf:"rate_limit"`
	RateLimitWindowSeconds int `koanf:"rate_limit_window_seconds"`
}

const (
	DefaultPort                   = 8080
	DefaultEnv                    = "production"
	DefaultRateLimitWindowSeconds = 60
)

var ErrInvalidPort = errors.New("port out of range")

// Load reads the optional YAML file at path, then overlays environment
// variables. Validation problems are collected, not fail-on-first.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Port:                   DefaultPort,
		Env:                    DefaultEnv,
		RateLimitWindowSeconds: DefaultRateLimitWindowSeconds,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	var errs []error

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PORT: %w", err))
		} else {
			cfg.Port = p
		}
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("METRICS_ENABLED: %w", err))
		} else {
			cfg.MetricsEnabled = b
		}
	}
	if v := os.Getenv("METRICS_TOKEN"); v != "" {
		cfg.MetricsToken = v
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT: %w", err))
		} else {
			cfg.RateLimit = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS: %w", err))
		} else {
			cfg.RateLimitWindowSeconds = n
		}
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Port))
	}

	return cfg, errors.Join(errs...)
}
