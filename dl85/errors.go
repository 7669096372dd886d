package dl85

import "errors"

// ErrNilCoverage is returned when FitCoverage is given a nil
// coverage.Structure.
var ErrNilCoverage = errors.New("dl85: coverage is nil")

// ErrInvalidConfig is returned when Config.MinSup < 1 or
// Config.MaxDepth < 1.
var ErrInvalidConfig = errors.New("dl85: min_sup must be >= 1 and max_depth must be >= 1")

// ErrTimeBudgetExceeded is returned alongside a well-formed (possibly
// single-leaf) tree and its Statistics when the search's time budget
// expired before the root subproblem was proved optimal (spec.md §7).
var ErrTimeBudgetExceeded = errors.New("dl85: time budget exceeded before proof")
