// Package config loads the token service's runtime configuration: a JSON
// file layered with environment overrides on top of built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Config is the full set of knobs cmd/yieldtokend needs to start.
type Config struct {
	HTTPAddr        string        `json:"http_addr"`
	RegistrarID     string        `json:"registrar_id"`
	RegistrarURL    string        `json:"registrar_url"`
	GatewayURL      string        `json:"gateway_url"`
	RequestTimeout  time.Duration `json:"request_timeout"`
	SnapshotTTL     time.Duration `json:"snapshot_ttl"`
	RateLimitPerMin int           `json:"rate_limit_per_min"`
	RateLimitBurst  int           `json:"rate_limit_burst"`
	LogLevel        string        `json:"log_level"`
}

// Default returns the built-in defaults, matching what a fresh deployment
// needs before any file or environment override is applied.
func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		RegistrarID:     "default",
		RegistrarURL:    "http://localhost:1317",
		GatewayURL:      "http://localhost:1318",
		RequestTimeout:  5 * time.Second,
		SnapshotTTL:     5 * time.Second,
		RateLimitPerMin: 60,
		RateLimitBurst:  120,
		LogLevel:        "info",
	}
}

// Load reads a JSON config file at path, if it exists, and overlays it on
// top of Default(). A missing file is not an error: Load returns the
// defaults unchanged, so the service starts instead of failing to boot.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays YIELDTOKEN_-prefixed environment variables onto cfg,
// applied after the file load so the environment always wins.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("YIELDTOKEN_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("YIELDTOKEN_REGISTRAR_ID"); v != "" {
		cfg.RegistrarID = v
	}
	if v := os.Getenv("YIELDTOKEN_REGISTRAR_URL"); v != "" {
		cfg.RegistrarURL = v
	}
	if v := os.Getenv("YIELDTOKEN_GATEWAY_URL"); v != "" {
		cfg.GatewayURL = v
	}
	if v := os.Getenv("YIELDTOKEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
