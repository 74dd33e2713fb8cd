// Package config loads the client configuration file kept alongside the
// preference store under the user config dir.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the client settings. Flags override file values.
type Config struct {
	// BaseURL is the storefront API root, e.g. https://shop.example.com.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds every request, parsed as a Go duration string.
	Timeout string `yaml:"timeout"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in settings used when no file exists.
func Default() Config {
	return Config{
		BaseURL: "http://localhost:5000",
		Timeout: "30s",
	}
}

// Dir resolves the client config directory (XDG aware).
func Dir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "toystore")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "toystore")
}

// Path is the default config file location.
func Path() string { return filepath.Join(Dir(), "config.yaml") }

// Load reads the config at path. A missing file yields the defaults; a
// malformed file is an error (silently ignoring a broken config hides
// misdirected requests).
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = Default().BaseURL
	}
	if cfg.Timeout == "" {
		cfg.Timeout = Default().Timeout
	}
	return cfg, nil
}

// RequestTimeout parses Timeout, falling back to the default on nonsense.
func (c Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(Default().Timeout)
	}
	return d
}
