package filestore

import (
	"github.com/rs/zerolog"

	"gedstore/internal/metrics"
)

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithLogger sets the logger used for load, family and commit events
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger.With().Str("component", "filestore").Logger()
	}
}

// WithMetrics records operation counts and latencies
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Store) {
		s.metrics = r
	}
}
