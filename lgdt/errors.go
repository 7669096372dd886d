package lgdt

import "errors"

// ErrNilCoverage is returned when Fit is given a nil coverage.Structure.
var ErrNilCoverage = errors.New("lgdt: coverage is nil")

// ErrMaxDepthTooSmall is returned when Config.MaxDepth is below 1.
var ErrMaxDepthTooSmall = errors.New("lgdt: max depth must be >= 1")
