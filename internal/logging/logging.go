// Package logging builds the zerolog logger used across gedstore.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"gedstore/internal/config"
)

const (
	permission = 0664
)

// Builder collects logger settings before Make
type Builder struct {
	writer io.Writer
	path   string
	level  string
	format string
}

// Logger is a built logger and the file it writes to, if any
type Logger struct {
	zerolog.Logger
	LogFile *os.File
}

// New starts a builder writing console output to stderr at info
func New() *Builder {
	return &Builder{writer: os.Stderr, level: "info", format: "console"}
}

// FromConfig applies the log section of a config
func (b *Builder) FromConfig(cfg config.LogConfig) *Builder {
	if cfg.Level != "" {
		b.level = cfg.Level
	}
	if cfg.Format != "" {
		b.format = cfg.Format
	}
	b.path = cfg.File
	return b
}

// FromPath appends to the file at path instead of the writer
func (b *Builder) FromPath(path string) *Builder {
	b.path = path
	return b
}

// FromWriter writes to w
func (b *Builder) FromWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the minimum level by name
func (b *Builder) WithLevel(level string) *Builder {
	b.level = level
	return b
}

// WithFormat selects "console" or "json" output
func (b *Builder) WithFormat(format string) *Builder {
	b.format = format
	return b
}

// Make opens the log file if one is set and builds the logger
func (b *Builder) Make() (*Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(b.level))
	if err != nil {
		return nil, err
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := &Logger{}
	w := b.writer
	if b.path != "" {
		out.LogFile, err = os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		w = zerolog.SyncWriter(out.LogFile)
	}
	if b.format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: b.path != ""}
	}

	out.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return out, nil
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.LogFile == nil {
		return nil
	}
	return l.LogFile.Close()
}
