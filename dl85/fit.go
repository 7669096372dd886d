package dl85

import (
	"time"

	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/dataset"
	"github.com/katalvlaran/dl85trees/dtree"
	"github.com/katalvlaran/dl85trees/item"
	"github.com/katalvlaran/dl85trees/trie"
)

// Fit is the dataset-driven entry point (spec.md §6 "dl85_fit"): it packs
// labels/features into a coverage.Structure via dataset.NewCoverage, then
// delegates to FitCoverage. Callers who already hold a coverage.Structure
// should call FitCoverage directly instead of paying to rebuild it.
func Fit(labels []int, features [][]uint8, numAttributes, numLabels int, opts ...Option) (*dtree.Tree, Statistics, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinSup < 1 || cfg.MaxDepth < 1 {
		return nil, Statistics{}, ErrInvalidConfig
	}

	cov, err := dataset.NewCoverage(labels, features, numAttributes, numLabels, cfg.MinSup, cfg.MaxDepth)
	if err != nil {
		return nil, Statistics{}, err
	}

	return FitCoverage(cov, opts...)
}

// FitCoverage runs the branch-and-bound search of spec.md §4.G over an
// already-built coverage.Structure, returning the extracted optimal (or,
// on ErrTimeBudgetExceeded, best-effort) tree and search Statistics.
func FitCoverage(cov *coverage.Structure, opts ...Option) (*dtree.Tree, Statistics, error) {
	if cov == nil {
		return nil, Statistics{}, ErrNilCoverage
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinSup < 1 || cfg.MaxDepth < 1 {
		return nil, Statistics{}, ErrInvalidConfig
	}

	start := time.Now()
	s := newSolver(cov, &cfg)
	rootErr, runErr := s.run()

	stats := Statistics{
		NumAttributes:     cov.NumAttributes(),
		TrainDistribution: cov.LabelsSupport(),
		CacheSize:         s.tr.Size(),
		TreeError:         rootErr,
		Duration:          time.Since(start),
		Config:            cfg,
	}
	stats.NumSamples = sum(stats.TrainDistribution)

	if runErr != nil && runErr != ErrTimeBudgetExceeded {
		return nil, stats, runErr
	}

	tree := extractTree(s.tr, trie.RootIndex)
	stats.TreeError = tree.Error()

	return tree, stats, runErr
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}

// extractTree walks the trie's memoized decisions starting at idx,
// re-deriving the itemset path implicitly via trie.Find/child traversal,
// and materializes a dtree.Tree (spec.md §4.G "Tree extraction"). A node
// whose search never sealed a feasible subtree (NodeError still +Inf) is
// extracted as its majority-class leaf, the best information available.
func extractTree(tr *trie.Trie, idx int) *dtree.Tree {
	t := dtree.NewTree()
	root := t.AddNode(0, false, dtree.NodeData{})
	extractInto(t, root, tr, idx, nil)

	return t
}

// extractInto fills in treeIdx's data from trieIdx, following the trie's
// own child bookkeeping via Find on the accumulated itemset so it never
// needs direct access to trie internals, and appends children as needed.
func extractInto(t *dtree.Tree, treeIdx int, tr *trie.Trie, trieIdx int, itemset item.Itemset) {
	d := tr.Data(trieIdx)
	if d.IsLeaf || d.Test < 0 {
		t.SetData(treeIdx, dtree.Leaf(d.Class, d.LeafError))

		return
	}

	leftSet := itemset.Push(item.Item{Attr: d.Test, Value: 0})
	rightSet := itemset.Push(item.Item{Attr: d.Test, Value: 1})
	leftIdx, leftOK := tr.Find(leftSet)
	rightIdx, rightOK := tr.Find(rightSet)
	if !leftOK || !rightOK {
		t.SetData(treeIdx, dtree.Leaf(d.Class, d.LeafError))

		return
	}

	t.SetData(treeIdx, dtree.Internal(d.Test, d.NodeError))
	left := t.AddNode(treeIdx, true, dtree.NodeData{})
	right := t.AddNode(treeIdx, false, dtree.NodeData{})
	extractInto(t, left, tr, leftIdx, leftSet)
	extractInto(t, right, tr, rightIdx, rightSet)
}
