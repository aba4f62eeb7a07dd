package engine

import "go.uber.org/zap"

// ============================================================================
// ENGINE OPTIONS — Functional options for Compute() / Execute()
// ============================================================================

// Defaults for the smoothing step.
const (
	DefaultSampleCount        = 300
	DefaultSmoothingThreshold = 3 // spline only when points > threshold
)

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	SampleCount        int
	SmoothingThreshold int
	Logger             *zap.Logger
}

// WithSampleCount sets how many evenly spaced samples the smooth curve has.
// Values below 2 are ignored.
func WithSampleCount(n int) Option {
	return func(c *config) {
		if n >= 2 {
			c.SampleCount = n
		}
	}
}

// WithSmoothingThreshold sets the point count that must be exceeded before
// a spline is fitted. The not-a-knot spline needs at least 4 points, so
// values below 3 are raised to 3.
func WithSmoothingThreshold(n int) Option {
	return func(c *config) {
		if n < DefaultSmoothingThreshold {
			n = DefaultSmoothingThreshold
		}
		c.SmoothingThreshold = n
	}
}

// WithLogger routes engine debug logging to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		SampleCount:        DefaultSampleCount,
		SmoothingThreshold: DefaultSmoothingThreshold,
		Logger:             zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
