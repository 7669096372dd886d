package lgdt

import (
	"context"

	"github.com/katalvlaran/dl85trees/specialist"
)

// Option configures optional Fit/FitCoverage behavior.
type Option func(*Config)

// Config holds configurable parameters for the greedy learner.
type Config struct {
	// Ctx allows cancellation; checked once per recursive call. Defaults
	// to context.Background().
	Ctx context.Context

	// MinSup is the minimum support a branch must retain to be split
	// further. Defaults to 1.
	MinSup int

	// MaxDepth bounds the learned tree's depth. Must be >= 1. Defaults
	// to 2.
	MaxDepth int

	// Oracle decides each node's root test while more than two levels of
	// depth remain, and its whole tree is used once exactly two remain; a
	// budget of one level always uses specialist.Depth1 directly
	// regardless of Oracle (spec.md §4.F step 4). Defaults to
	// specialist.Depth2Oracle{}.
	Oracle specialist.Oracle
}

// DefaultConfig returns a Config with:
//   - Background context
//   - MinSup = 1
//   - MaxDepth = 2
//   - Oracle = specialist.Depth2Oracle{}
func DefaultConfig() Config {
	return Config{
		Ctx:      context.Background(),
		MinSup:   1,
		MaxDepth: 2,
		Oracle:   specialist.Depth2Oracle{},
	}
}

// WithContext returns an Option that sets Ctx. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}

// WithMinSupport returns an Option that sets MinSup.
func WithMinSupport(n int) Option {
	return func(c *Config) {
		c.MinSup = n
	}
}

// WithMaxDepth returns an Option that sets MaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *Config) {
		c.MaxDepth = n
	}
}

// WithOracle returns an Option that sets Oracle.
func WithOracle(o specialist.Oracle) Option {
	return func(c *Config) {
		c.Oracle = o
	}
}
