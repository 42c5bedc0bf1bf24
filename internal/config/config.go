// Package config provides configuration management for gedstore.
//
// Config file locations (priority order):
//  1. $GEDSTORE_CONFIG
//  2. ./gedstore.yaml
//  3. $XDG_CONFIG_HOME/gedstore/config.yaml
//  4. ~/.config/gedstore/config.yaml
//  5. /etc/gedstore/config.yaml
//
// $GEDSTORE_DOCUMENT overrides document.path wherever the config came from.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	defaultDocumentPath = "./tree.ged"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultDebounce     = 250 * time.Millisecond
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		cfg.applyEnv()
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Document: DocumentConfig{Path: defaultDocumentPath},
		Log:      LogConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Watch:    WatchConfig{Debounce: Duration(defaultDebounce)},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Document.Path == "" {
		c.Document.Path = defaultDocumentPath
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = Duration(defaultDebounce)
	}
}

// applyEnv applies environment overrides
func (c *Config) applyEnv() {
	if path := os.Getenv(EnvDocumentPath); path != "" {
		c.Document.Path = path
	}
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q: want console or json", c.Log.Format)
	}
	return nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	mirror := "off"
	if c.Mirror.SQLitePath != "" {
		mirror = c.Mirror.SQLitePath
	}
	summary := fmt.Sprintf("Document: %s\n", c.Document.Path)
	summary += fmt.Sprintf("Log: %s (%s)", c.Log.Level, c.Log.Format)
	if c.Log.File != "" {
		summary += fmt.Sprintf(" -> %s", c.Log.File)
	}
	summary += fmt.Sprintf("\nMirror: %s, Metrics: %t, Watch debounce: %s",
		mirror, c.Metrics.Enabled, c.Watch.Debounce.Duration())

	return summary
}
