package bitset

import "errors"

// Sentinel errors for bitset construction.
var (
	// ErrNoRows indicates N == 0: there is nothing to pack.
	ErrNoRows = errors.New("bitset: dataset has zero rows")

	// ErrNoAttributes indicates A == 0.
	ErrNoAttributes = errors.New("bitset: dataset has zero attributes")

	// ErrNoLabels indicates K == 0.
	ErrNoLabels = errors.New("bitset: dataset has zero class labels")

	// ErrNonBinaryFeature indicates a feature cell outside {0,1} or a
	// class label outside [0, numLabels).
	ErrNonBinaryFeature = errors.New("bitset: non-binary value encountered")

	// ErrRaggedRows indicates feature rows of differing lengths.
	ErrRaggedRows = errors.New("bitset: feature rows have inconsistent length")
)
