package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.API.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("timeout_seconds = %d, want %d", cfg.API.TimeoutSeconds, DefaultTimeoutSeconds)
	}
	if cfg.API.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("max_attempts = %d, want %d", cfg.API.MaxAttempts, DefaultMaxAttempts)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[log]
level = "debug"
format = "json"

[api]
base_url = "https://recordings.example.com/"
api_key = "file-key"
timeout_seconds = 5
max_attempts = 2
rate_limit_per_minute = 10
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "https://recordings.example.com" {
		t.Errorf("base_url = %q, trailing slash should be stripped", cfg.API.BaseURL)
	}
	if cfg.API.APIKey != "file-key" {
		t.Errorf("api_key = %q", cfg.API.APIKey)
	}
	if cfg.API.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.API.Timeout())
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.API.RateLimitPerMinute != 10 {
		t.Errorf("rate_limit_per_minute = %d", cfg.API.RateLimitPerMinute)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[api]
base_url = "https://file.example.com"
api_key = "file-key"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("API_BASE_URL", "https://env.example.com/")
	t.Setenv("API_KEY", "env-key")
	t.Setenv("DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("base_url = %q, want env value without trailing slash", cfg.API.BaseURL)
	}
	if cfg.API.APIKey != "env-key" {
		t.Errorf("api_key = %q, want env value", cfg.API.APIKey)
	}
	if !cfg.API.Debug {
		t.Error("expected DEBUG=true to enable debug")
	}
}

func TestDebugEnvParsing(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"false", false},
		{"not-a-bool", false},
	}
	for _, tt := range tests {
		t.Setenv("DEBUG", tt.value)
		cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.API.Debug != tt.want {
			t.Errorf("DEBUG=%q: debug = %v, want %v", tt.value, cfg.API.Debug, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Config{API: APIConfig{BaseURL: "https://recordings.example.com", APIKey: "k"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name string
		api  APIConfig
	}{
		{"missing base url", APIConfig{APIKey: "k"}},
		{"missing api key", APIConfig{BaseURL: "https://recordings.example.com"}},
		{"bad scheme", APIConfig{BaseURL: "ftp://recordings.example.com", APIKey: "k"}},
		{"no host", APIConfig{BaseURL: "https://", APIKey: "k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{API: tt.api}
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
