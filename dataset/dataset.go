package dataset

import (
	"fmt"

	"github.com/katalvlaran/dl85trees/bitset"
	"github.com/katalvlaran/dl85trees/coverage"
)

// FormatInputData validates (labels, features, minSup, maxDepth) and
// bit-packs them into a bitset.Data (spec.md §4.A "format_input_data").
// minSup and maxDepth are learner parameters re-validated here so a
// caller cannot build a Structure that no learner could ever use.
func FormatInputData(labels []int, features [][]uint8, numAttributes, numLabels, minSup, maxDepth int) (*bitset.Data, error) {
	if minSup < 1 {
		return nil, fmt.Errorf("%w: min_sup must be >= 1, got %d", ErrInvalidInput, minSup)
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("%w: max_depth must be >= 1, got %d", ErrInvalidInput, maxDepth)
	}
	if numLabels < 1 {
		return nil, fmt.Errorf("%w: num_labels must be >= 1, got %d", ErrInvalidInput, numLabels)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: num_rows must be >= 1", ErrInvalidInput)
	}

	data, err := bitset.Build(labels, features, numAttributes, numLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return data, nil
}

// NewCoverage is FormatInputData followed by coverage.New: the normal
// entry point for turning raw training data into a ready-to-search
// coverage.Structure.
func NewCoverage(labels []int, features [][]uint8, numAttributes, numLabels, minSup, maxDepth int) (*coverage.Structure, error) {
	data, err := FormatInputData(labels, features, numAttributes, numLabels, minSup, maxDepth)
	if err != nil {
		return nil, err
	}

	return coverage.New(data)
}
