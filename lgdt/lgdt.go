package lgdt

import (
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/dtree"
	"github.com/katalvlaran/dl85trees/item"
	"github.com/katalvlaran/dl85trees/specialist"
)

// FitCoverage learns a decision tree over cov's full dataset using the
// greedy algorithm of spec.md §4.F. cov is left at its original (empty
// itemset) position when FitCoverage returns, whether or not it returns
// an error.
func FitCoverage(cov *coverage.Structure, opts ...Option) (*dtree.Tree, error) {
	if cov == nil {
		return nil, ErrNilCoverage
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDepth < 1 {
		return nil, ErrMaxDepthTooSmall
	}

	candidates := make([]int, cov.NumAttributes())
	for a := range candidates {
		candidates[a] = a
	}

	return fit(cov, &cfg, candidates, cfg.MaxDepth)
}

// fit recurses down one level per call, consuming one unit of
// maxDepth and one attribute from candidates per split.
func fit(cov *coverage.Structure, cfg *Config, candidates []int, maxDepth int) (*dtree.Tree, error) {
	if err := cfg.Ctx.Err(); err != nil {
		return nil, err
	}

	if maxDepth <= 1 {
		return specialist.Depth1(cov, candidates, cfg.MinSup)
	}
	if maxDepth == 2 {
		return cfg.Oracle.Fit(cov, candidates, cfg.MinSup)
	}

	decision, err := cfg.Oracle.Fit(cov, candidates, cfg.MinSup)
	if err != nil {
		return nil, err
	}
	if decision.Data(0).IsLeaf {
		return decision, nil
	}

	a := decision.Data(0).Test
	remaining := removeAttr(candidates, a)

	result := dtree.NewTree()
	root := result.AddNode(0, false, dtree.NodeData{})
	left := result.AddNode(root, true, dtree.NodeData{})
	right := result.AddNode(root, false, dtree.NodeData{})

	var totalErr float64
	for _, branch := range [2]struct {
		value uint8
		idx   int
	}{{0, left}, {1, right}} {
		if _, err := cov.Push(item.Item{Attr: a, Value: branch.value}); err != nil {
			return nil, err
		}
		childTree, err := fit(cov, cfg, remaining, maxDepth-1)
		backErr := cov.Backtrack()
		if err != nil {
			return nil, err
		}
		if backErr != nil {
			return nil, backErr
		}

		dtree.MoveTree(result, branch.idx, childTree, 0)
		totalErr += childTree.Error()
	}

	result.SetData(root, dtree.Internal(a, totalErr))

	return result, nil
}

// removeAttr returns a fresh slice with a removed, preserving order.
func removeAttr(candidates []int, a int) []int {
	out := make([]int, 0, len(candidates)-1)
	for _, c := range candidates {
		if c != a {
			out = append(out, c)
		}
	}

	return out
}
