package dl85

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/dl85trees/heuristic"
)

// Specialization selects whether the depth-≤2 specialist shortcut
// (spec.md §4.G step 2) is used to seal a subtree in one shot whenever
// at most two levels of depth budget remain.
type Specialization int

const (
	// NoSpecialization always explores the branch loop down to
	// max_depth, even in the last two levels.
	NoSpecialization Specialization = iota
	// Depth2Specialization runs specialist.Depth2 when
	// max_depth-depth == 2 and specialist.Depth1 when it is 1, and
	// stitches the result into the trie.
	Depth2Specialization
)

// LowerBoundKind selects the lower-bound refinement used to prune
// branches before recursing (spec.md §4.G step 5).
type LowerBoundKind int

const (
	// NoLowerBound uses only the trie's memoized node_error/lower_bound.
	NoLowerBound LowerBoundKind = iota
	// SimilarityLowerBound additionally compares a new subproblem's
	// coverage.Snapshot against previously proved-infeasible snapshots.
	SimilarityLowerBound
)

// Option configures optional Fit/FitCoverage behavior.
type Option func(*Config)

// Config holds the search's configuration (spec.md §4.G).
type Config struct {
	// Ctx allows cooperative cancellation; checked once per recursive
	// call. Defaults to context.Background().
	Ctx context.Context

	MinSup         int
	MaxDepth       int
	MaxError       float64 // upper bound; +Inf means unbounded
	MaxTime        time.Duration
	Specialization Specialization
	LowerBound     LowerBoundKind
	OneTimeSort    bool
	Heuristic      heuristic.Order
}

// DefaultConfig returns a Config with:
//   - Background context
//   - MinSup = 1, MaxDepth = 2
//   - MaxError = +Inf (unbounded)
//   - MaxTime = 0 (unlimited)
//   - Specialization = Depth2Specialization
//   - LowerBound = NoLowerBound
//   - OneTimeSort = true
//   - Heuristic = heuristic.InfoGain
func DefaultConfig() Config {
	return Config{
		Ctx:            context.Background(),
		MinSup:         1,
		MaxDepth:       2,
		MaxError:       math.Inf(1),
		MaxTime:        0,
		Specialization: Depth2Specialization,
		LowerBound:     NoLowerBound,
		OneTimeSort:    true,
		Heuristic:      heuristic.InfoGain,
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
func WithMinSupport(n int) Option { return func(c *Config) { c.MinSup = n } }

// WithMaxDepth returns an Option that sets MaxDepth.
func WithMaxDepth(n int) Option { return func(c *Config) { c.MaxDepth = n } }

// WithMaxError returns an Option that sets the upper bound MaxError.
func WithMaxError(v float64) Option { return func(c *Config) { c.MaxError = v } }

// WithMaxTime returns an Option that sets the wall-clock time budget.
// Zero means unlimited.
func WithMaxTime(d time.Duration) Option { return func(c *Config) { c.MaxTime = d } }

// WithSpecialization returns an Option that sets Specialization.
func WithSpecialization(s Specialization) Option { return func(c *Config) { c.Specialization = s } }

// WithLowerBound returns an Option that sets LowerBound.
func WithLowerBound(l LowerBoundKind) Option { return func(c *Config) { c.LowerBound = l } }

// WithOneTimeSort returns an Option that sets OneTimeSort.
func WithOneTimeSort(b bool) Option { return func(c *Config) { c.OneTimeSort = b } }

// WithHeuristic returns an Option that sets the candidate-ordering
// Heuristic.
func WithHeuristic(o heuristic.Order) Option { return func(c *Config) { c.Heuristic = o } }

// Statistics reports the outcome of a completed (or time-budgeted)
// search (spec.md §6).
type Statistics struct {
	NumAttributes     int
	NumSamples        int
	TrainDistribution []int
	CacheSize         int
	TreeError         float64
	Duration          time.Duration
	Config            Config
}
