package lgdt

import (
	"github.com/katalvlaran/dl85trees/dataset"
	"github.com/katalvlaran/dl85trees/dtree"
)

// Fit is the dataset-driven entry point (spec.md §6 "lgdt_fit"): it
// packs labels/features into a coverage.Structure via
// dataset.NewCoverage, re-validating min_sup/max_depth at the Config
// level, then delegates to FitCoverage. Callers who already hold a
// coverage.Structure (e.g. to run several fits over one dataset) should
// call FitCoverage directly instead of paying to rebuild it each time.
func Fit(labels []int, features [][]uint8, numAttributes, numLabels int, opts ...Option) (*dtree.Tree, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDepth < 1 {
		return nil, ErrMaxDepthTooSmall
	}

	cov, err := dataset.NewCoverage(labels, features, numAttributes, numLabels, cfg.MinSup, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	return FitCoverage(cov, opts...)
}
