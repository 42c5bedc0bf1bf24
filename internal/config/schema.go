package config

import (
	"time"
)

// Config is the on-disk configuration of gedstore
type Config struct {
	Version  int            `yaml:"version"`
	Document DocumentConfig `yaml:"document"`
	Log      LogConfig      `yaml:"log"`
	Mirror   MirrorConfig   `yaml:"mirror"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Watch    WatchConfig    `yaml:"watch"`
}

// DocumentConfig locates the GEDCOM document
type DocumentConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level  string `yaml:"level"`          // trace, debug, info, warn, error
	Format string `yaml:"format"`         // console or json
	File   string `yaml:"file,omitempty"` // empty = stderr
}

// MirrorConfig enables the SQLite mirror
type MirrorConfig struct {
	SQLitePath string `yaml:"sqlite_path,omitempty"` // empty = no mirror
}

// MetricsConfig enables operation metrics
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// WatchConfig tunes the document watcher
type WatchConfig struct {
	Debounce Duration `yaml:"debounce"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
