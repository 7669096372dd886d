package specialist

import (
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/dtree"
)

// Depth1 picks the single candidate attribute minimizing the summed
// misclassification of its two branches (spec.md §4.E). A candidate
// whose branch support falls below minSup on either side is skipped. If
// no feasible candidate strictly improves on the current position's
// majority-class leaf (including an empty candidate set), Depth1 returns
// that single leaf.
func Depth1(cov *coverage.Structure, candidates []int, minSup int) (*dtree.Tree, error) {
	rootClass, rootErr := MajorityClass(cov.LabelsSupport())

	bestAttr := -1
	bestErr := rootErr
	var bestLeft, bestRight []int

	for _, a := range candidates {
		left, err := pushLabels(cov, a, 0)
		if err != nil {
			return nil, err
		}
		right, err := pushLabels(cov, a, 1)
		if err != nil {
			return nil, err
		}
		if sum(left) < minSup || sum(right) < minSup {
			continue
		}

		_, leftErr := MajorityClass(left)
		_, rightErr := MajorityClass(right)
		total := leftErr + rightErr
		if total < bestErr {
			bestAttr, bestErr = a, total
			bestLeft, bestRight = left, right
		}
	}

	tree := dtree.NewTree()
	if bestAttr == -1 {
		tree.AddNode(0, false, dtree.Leaf(rootClass, rootErr))

		return tree, nil
	}

	root := tree.AddNode(0, false, dtree.Internal(bestAttr, bestErr))
	leftClass, leftErr := MajorityClass(bestLeft)
	rightClass, rightErr := MajorityClass(bestRight)
	tree.AddNode(root, true, dtree.Leaf(leftClass, leftErr))
	tree.AddNode(root, false, dtree.Leaf(rightClass, rightErr))

	return tree, nil
}
