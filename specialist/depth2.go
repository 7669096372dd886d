package specialist

import (
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/dtree"
)

// branchPlan is the best arrangement found for one branch (attrs[root] =
// rv) of a candidate root: either a leaf, or a further split on
// attrs[child].
type branchPlan struct {
	err    float64
	child  int // index into Contingency.Attrs, or -1 for a leaf
	class0 int // leaf class when child == -1
	class1 int
	err0   float64
	err1   float64
}

// Depth2 finds the depth-≤2 tree over candidates minimizing total leaf
// misclassification (spec.md §4.E, MurTree-style): it builds the
// pairwise contingency table once, then for every candidate root
// attribute picks the best (possibly absent) child attribute
// independently on each branch. A root candidate with either branch
// below minSup is skipped; a child attribute is only used when both of
// its sub-branches reach minSup, and a branch with no such child stays a
// leaf. If no
// candidate yields a strict improvement over the position's own
// majority class, Depth2 returns that single leaf.
func Depth2(cov *coverage.Structure, candidates []int, minSup int) (*dtree.Tree, error) {
	rootClass, rootErr := MajorityClass(cov.LabelsSupport())

	ct, err := BuildContingency(cov, candidates)
	if err != nil {
		return nil, err
	}
	n := len(candidates)

	bestRoot := -1
	bestErr := rootErr
	var bestPlan0, bestPlan1 branchPlan

	for i := 0; i < n; i++ {
		branch0 := branchLabelsFromDiag(ct, i, 0)
		branch1 := branchLabelsFromDiag(ct, i, 1)
		if sum(branch0) < minSup || sum(branch1) < minSup {
			continue
		}

		plan0 := bestBranchPlan(ct, i, 0, branch0, minSup)
		plan1 := bestBranchPlan(ct, i, 1, branch1, minSup)
		total := plan0.err + plan1.err

		if total < bestErr {
			bestRoot, bestErr = i, total
			bestPlan0, bestPlan1 = plan0, plan1
		}
	}

	tree := dtree.NewTree()
	if bestRoot == -1 {
		tree.AddNode(0, false, dtree.Leaf(rootClass, rootErr))

		return tree, nil
	}

	root := tree.AddNode(0, false, dtree.Internal(ct.Attrs[bestRoot], bestErr))
	attachBranch(tree, root, true, ct, bestPlan0)
	attachBranch(tree, root, false, ct, bestPlan1)

	return tree, nil
}

// branchLabelsFromDiag reads attrs[i]=rv's class-support vector from the
// contingency table's root vector and diagonal.
func branchLabelsFromDiag(ct *Contingency, i int, rv uint8) []int {
	k := len(ct.Root)
	out := make([]int, k)
	for y := 0; y < k; y++ {
		d, _ := ct.M[y].At(i, i)
		if rv == 1 {
			out[y] = int(d + 0.5)
		} else {
			out[y] = ct.Root[y] - int(d+0.5)
		}
	}

	return out
}

// bestBranchPlan picks the best child attribute to further split branch
// (i, rv), or leaves it as a leaf if no candidate improves on that.
func bestBranchPlan(ct *Contingency, i int, rv uint8, branchLabels []int, minSup int) branchPlan {
	leafClass, leafErr := MajorityClass(branchLabels)
	best := branchPlan{err: leafErr, child: -1, class0: leafClass, class1: leafClass}

	for j := 0; j < len(ct.Attrs); j++ {
		if j == i {
			continue
		}

		left := ct.LeafSupport(i, j, rv, 0)
		right := ct.LeafSupport(i, j, rv, 1)
		if sum(left) < minSup || sum(right) < minSup {
			continue
		}

		leftClass, leftErr := MajorityClass(left)
		rightClass, rightErr := MajorityClass(right)
		total := leftErr + rightErr
		if total < best.err {
			best = branchPlan{
				err: total, child: j,
				class0: leftClass, err0: leftErr,
				class1: rightClass, err1: rightErr,
			}
		}
	}

	return best
}

// attachBranch wires plan as the isLeft child of parent in tree.
func attachBranch(tree *dtree.Tree, parent int, isLeft bool, ct *Contingency, plan branchPlan) {
	if plan.child == -1 {
		tree.AddNode(parent, isLeft, dtree.Leaf(plan.class0, plan.err))

		return
	}

	node := tree.AddNode(parent, isLeft, dtree.Internal(ct.Attrs[plan.child], plan.err))
	tree.AddNode(node, true, dtree.Leaf(plan.class0, plan.err0))
	tree.AddNode(node, false, dtree.Leaf(plan.class1, plan.err1))
}
