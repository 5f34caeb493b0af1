// Package config loads and exposes adapter configuration (TOML file + environment).
//
// Environment variables win over the config file so that MCP hosts, which pass
// credentials through the process environment, never need a file on disk.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Default configuration values used when a field is missing in TOML and environment.
const (
	DefaultConfigPath     = "config.toml"
	DefaultTimeoutSeconds = 30
	DefaultMaxAttempts    = 3
)

// Config is the root adapter configuration.
type Config struct {
	Log LogConfig `toml:"log"`
	API APIConfig `toml:"api"`
}

// LogConfig holds logging level and format (e.g. level=info, format=text).
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// APIConfig holds the recording service endpoint, credentials, and client tuning.
type APIConfig struct {
	BaseURL            string `toml:"base_url"`
	APIKey             string `toml:"api_key"`
	Debug              bool   `toml:"debug"`
	TimeoutSeconds     int    `toml:"timeout_seconds"`
	MaxAttempts        int    `toml:"max_attempts"`
	RateLimitPerMinute int    `toml:"rate_limit_per_minute"`
}

// Timeout returns the per-attempt request timeout.
func (c APIConfig) Timeout() time.Duration {
	seconds := c.TimeoutSeconds
	if seconds <= 0 {
		seconds = DefaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// Load reads the TOML config file at path (absent file is fine), applies
// defaults for missing fields, then applies environment overrides
// (API_BASE_URL, API_KEY, DEBUG, LOG_LEVEL, LOG_FORMAT).
func Load(path string) (Config, error) {
	cfg := Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		API: APIConfig{
			TimeoutSeconds: DefaultTimeoutSeconds,
			MaxAttempts:    DefaultMaxAttempts,
		},
	}

	if path == "" {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
	} else if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}

	cfg.applyEnv()
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	cfg.API.APIKey = strings.TrimSpace(cfg.API.APIKey)
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.API.APIKey = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.API.Debug = parsed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// Validate reports configuration errors before any network activity happens.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api_base_url is required (set API_BASE_URL or [api] base_url)")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api_base_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api_base_url must be an http or https URL, got %q", c.API.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("api_base_url has no host: %q", c.API.BaseURL)
	}
	if c.API.APIKey == "" {
		return errors.New("api_key is required (set API_KEY or [api] api_key)")
	}
	return nil
}
