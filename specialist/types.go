package specialist

import (
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/dtree"
	"github.com/katalvlaran/dl85trees/item"
)

// Oracle is the per-node decision function lgdt delegates to (spec.md
// §4.F): given the coverage.Structure's current position, a candidate
// attribute set, and a minimum-support floor, it returns a complete
// depth-≤2 tree for that position. Depth1Oracle and Depth2Oracle are the
// two production implementations.
type Oracle interface {
	Fit(cov *coverage.Structure, candidates []int, minSup int) (*dtree.Tree, error)
}

// Depth1Oracle adapts Depth1 to the Oracle interface.
type Depth1Oracle struct{}

// Fit implements Oracle.
func (Depth1Oracle) Fit(cov *coverage.Structure, candidates []int, minSup int) (*dtree.Tree, error) {
	return Depth1(cov, candidates, minSup)
}

// Depth2Oracle adapts Depth2 to the Oracle interface.
type Depth2Oracle struct{}

// Fit implements Oracle.
func (Depth2Oracle) Fit(cov *coverage.Structure, candidates []int, minSup int) (*dtree.Tree, error) {
	return Depth2(cov, candidates, minSup)
}

// MajorityClass returns the class with the largest support (ties broken
// by lowest class index) and the resulting misclassification count
// (sum(supports) - max).
func MajorityClass(supports []int) (class int, misclassified float64) {
	total, best, bestClass := 0, -1, 0
	for c, s := range supports {
		total += s
		if s > best {
			best = s
			bestClass = c
		}
	}

	return bestClass, float64(total - best)
}

func sum(supports []int) int {
	total := 0
	for _, s := range supports {
		total += s
	}

	return total
}

// pushLabels reads the labels_support of pushing (attr, value) onto cov,
// leaving cov unchanged afterward.
func pushLabels(cov *coverage.Structure, attr int, value uint8) ([]int, error) {
	if _, err := cov.Push(item.Item{Attr: attr, Value: value}); err != nil {
		return nil, err
	}
	labels := cov.LabelsSupport()

	return labels, cov.Backtrack()
}
