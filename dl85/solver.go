package dl85

import (
	"math"
	"time"

	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/dtree"
	"github.com/katalvlaran/dl85trees/heuristic"
	"github.com/katalvlaran/dl85trees/item"
	"github.com/katalvlaran/dl85trees/specialist"
	"github.com/katalvlaran/dl85trees/trie"
)

// solver holds the search's mutable state for one Fit/FitCoverage call:
// the coverage position (B), the itemset memoization cache (D), the
// configuration, an optional wall-clock deadline, and optional
// similarity-lower-bound bookkeeping (spec.md §4.G "State").
type solver struct {
	cov      *coverage.Structure
	tr       *trie.Trie
	cfg      *Config
	deadline time.Time
	timed    bool
	sim      *similarityTracker
}

func newSolver(cov *coverage.Structure, cfg *Config) *solver {
	s := &solver{cov: cov, tr: trie.NewTrie(), cfg: cfg}
	if cfg.MaxTime > 0 {
		s.deadline = time.Now().Add(cfg.MaxTime)
		s.timed = true
	}
	if cfg.LowerBound == SimilarityLowerBound {
		s.sim = &similarityTracker{}
	}

	return s
}

func (s *solver) timeExhausted() bool {
	return s.timed && time.Now().After(s.deadline)
}

// run seeds the root trie node and starts the recursion, returning the
// proven (or best-effort, if time-budgeted) root error.
func (s *solver) run() (float64, error) {
	candidates := make([]int, s.cov.NumAttributes())
	for a := range candidates {
		candidates[a] = a
	}
	candidates = s.filterBySupport(candidates, -1)
	if err := heuristic.Sort(candidates, s.cov, s.cfg.Heuristic); err != nil {
		return 0, err
	}

	root := trie.RootIndex
	s.seedLeaf(root)

	return s.solve(0, s.cfg.MaxError, -1, nil, candidates, root)
}

// seedLeaf fills in LeafError/Class for a freshly created trie node from
// cov's current position, leaving Test/NodeError/IsLeaf untouched.
func (s *solver) seedLeaf(idx int) {
	class, leafErr := specialist.MajorityClass(s.cov.LabelsSupport())
	d := s.tr.Data(idx)
	d.Class = class
	d.LeafError = leafErr
	s.tr.SetData(idx, d)
}

// filterBySupport drops parentAttr and any attribute whose branches
// would violate min_sup at cov's current position (spec.md §4.G step 3).
func (s *solver) filterBySupport(candidates []int, parentAttr int) []int {
	out := make([]int, 0, len(candidates))
	support := s.cov.Support()
	for _, a := range candidates {
		if a == parentAttr {
			continue
		}
		left, err := s.cov.TempPush(item.Item{Attr: a, Value: 0})
		if err != nil {
			continue
		}
		right := support - left
		if left >= s.cfg.MinSup && right >= s.cfg.MinSup {
			out = append(out, a)
		}
	}

	return out
}

// solve implements spec.md §4.G's recursion. It returns the node's
// proven error, or +Inf if infeasible under upperBound.
func (s *solver) solve(depth int, upperBound float64, parentAttr int, itemset item.Itemset, candidates []int, nodeIdx int) (float64, error) {
	if s.timeExhausted() {
		return 0, ErrTimeBudgetExceeded
	}
	if err := s.cfg.Ctx.Err(); err != nil {
		return 0, err
	}

	data := s.tr.Data(nodeIdx)
	support := s.cov.Support()

	switch {
	case depth == s.cfg.MaxDepth:
		data.IsLeaf = true
		data.NodeError = data.LeafError
		s.tr.SetData(nodeIdx, data)

		return data.LeafError, nil
	case support < 2*s.cfg.MinSup:
		data.IsLeaf = true
		data.NodeError = data.LeafError
		s.tr.SetData(nodeIdx, data)

		return data.LeafError, nil
	case data.LeafError == 0:
		data.IsLeaf = true
		data.NodeError = 0
		s.tr.SetData(nodeIdx, data)

		return 0, nil
	}

	lowerBound := data.LowerBound
	if s.sim != nil {
		lowerBound = s.sim.refine(s.cov.Snapshot(), lowerBound)
	}
	if lowerBound >= upperBound {
		return math.Inf(1), nil
	}

	if s.cfg.Specialization == Depth2Specialization && s.cfg.MaxDepth-depth <= 2 {
		return s.runSpecialist(depth, itemset, candidates, nodeIdx)
	}

	nodeCandidates := candidates
	if parentAttr >= 0 {
		nodeCandidates = s.filterBySupport(candidates, parentAttr)
	}
	if len(nodeCandidates) == 0 {
		data.IsLeaf = true
		data.NodeError = data.LeafError
		s.tr.SetData(nodeIdx, data)

		return data.LeafError, nil
	}
	if !s.cfg.OneTimeSort {
		if err := heuristic.Sort(nodeCandidates, s.cov, s.cfg.Heuristic); err != nil {
			return 0, err
		}
	}

	childUpperBound := upperBound
	minLowerBound := math.Inf(1)

	for _, a := range nodeCandidates {
		leftErr, rightLowerBound, rightSkipped, err := s.exploreLeft(depth, childUpperBound, a, itemset, nodeCandidates)
		if err != nil {
			return 0, err
		}

		if rightSkipped {
			candidateBound := leftErr + rightLowerBound
			if candidateBound < minLowerBound {
				minLowerBound = candidateBound
			}

			continue
		}

		rightErr, err := s.exploreRight(depth, childUpperBound-leftErr, a, itemset, nodeCandidates)
		if err != nil {
			return 0, err
		}

		if math.IsInf(leftErr, 1) || math.IsInf(rightErr, 1) {
			continue
		}

		featErr := leftErr + rightErr
		if featErr < childUpperBound {
			childUpperBound = featErr
			data.Test = a
			data.NodeError = childUpperBound
			s.tr.SetData(nodeIdx, data)
			if childUpperBound == 0 {
				break
			}
		}
	}

	data = s.tr.Data(nodeIdx)
	if math.IsInf(data.NodeError, 1) {
		newBound := data.LowerBound
		if minLowerBound > newBound {
			newBound = minLowerBound
		}
		if upperBound > newBound {
			newBound = upperBound
		}
		data.LowerBound = newBound
		s.tr.SetData(nodeIdx, data)
		s.sim.record(s.cov, newBound)

		return math.Inf(1), nil
	}

	return data.NodeError, nil
}

// exploreLeft pushes (a, 0), finds-or-creates its trie node, recurses,
// and pops. It also reports the trie-derived lower bound for (a, 1) so
// the caller can decide whether exploring the right branch is still
// worthwhile, and whether it was skipped.
func (s *solver) exploreLeft(depth int, upperBound float64, a int, itemset item.Itemset, candidates []int) (leftErr, rightLowerBound float64, skipped bool, err error) {
	// Computed from the parent's own coverage position, before left is
	// pushed: peekRightBound pushes (a,1) directly from here and pops.
	rightLowerBound, err = s.peekRightBound(itemset, a)
	if err != nil {
		return 0, 0, false, err
	}

	left := item.Item{Attr: a, Value: 0}
	if _, pushErr := s.cov.Push(left); pushErr != nil {
		return 0, 0, false, pushErr
	}
	leftSet := itemset.Push(left)
	created, leftIdx := s.tr.FindOrCreate(leftSet)
	if created {
		s.seedLeaf(leftIdx)
	}

	leftErr, err = s.solve(depth+1, upperBound, a, leftSet, candidates, leftIdx)
	if backErr := s.cov.Backtrack(); err == nil {
		err = backErr
	}
	if err != nil {
		return 0, 0, false, err
	}

	if leftErr > upperBound-rightLowerBound {
		return leftErr, rightLowerBound, true, nil
	}

	return leftErr, rightLowerBound, false, nil
}

// exploreRight pushes (a, 1), finds-or-creates its trie node, recurses,
// and pops.
func (s *solver) exploreRight(depth int, upperBound float64, a int, itemset item.Itemset, candidates []int) (float64, error) {
	right := item.Item{Attr: a, Value: 1}
	if _, err := s.cov.Push(right); err != nil {
		return 0, err
	}
	rightSet := itemset.Push(right)
	created, rightIdx := s.tr.FindOrCreate(rightSet)
	if created {
		s.seedLeaf(rightIdx)
	}

	rightErr, err := s.solve(depth+1, upperBound, a, rightSet, candidates, rightIdx)
	if backErr := s.cov.Backtrack(); err == nil {
		err = backErr
	}

	return rightErr, err
}

// peekRightBound reads the trie's memoized bound for itemset ∪ {(a,1)},
// refined by similarity (when enabled) at that subproblem's own
// coverage position: it pushes (a,1), snapshots, and pops before
// returning, so the refinement never sees a foreign branch's rows.
func (s *solver) peekRightBound(itemset item.Itemset, a int) (float64, error) {
	baseline := 0.0
	rightSet := itemset.Push(item.Item{Attr: a, Value: 1})
	if idx, ok := s.tr.Find(rightSet); ok {
		d := s.tr.Data(idx)
		if !math.IsInf(d.NodeError, 1) {
			baseline = d.NodeError
		} else {
			baseline = d.LowerBound
		}
	}
	if s.sim == nil {
		return baseline, nil
	}

	if _, err := s.cov.Push(item.Item{Attr: a, Value: 1}); err != nil {
		return 0, err
	}
	refined := s.sim.refine(s.cov.Snapshot(), baseline)
	if err := s.cov.Backtrack(); err != nil {
		return 0, err
	}

	return refined, nil
}

// runSpecialist runs the depth-≤2 specialist shortcut and stitches its
// result into the trie under itemset (spec.md §4.G step 2).
func (s *solver) runSpecialist(depth int, itemset item.Itemset, candidates []int, nodeIdx int) (float64, error) {
	var tree *dtree.Tree
	var err error
	if s.cfg.MaxDepth-depth == 1 {
		tree, err = specialist.Depth1(s.cov, candidates, s.cfg.MinSup)
	} else {
		tree, err = specialist.Depth2(s.cov, candidates, s.cfg.MinSup)
	}
	if err != nil {
		return 0, err
	}

	if err := s.stitch(tree, 0, itemset, nodeIdx); err != nil {
		return 0, err
	}

	return s.tr.Data(nodeIdx).NodeError, nil
}

// stitch copies tree[treeIdx]'s decision onto trie node nodeIdx, and
// recurses into both children (creating their trie nodes as needed),
// keeping cov in lock-step with itemset so every stitched node's
// leaf_error/class is computed from its own real coverage position.
func (s *solver) stitch(tree *dtree.Tree, treeIdx int, itemset item.Itemset, nodeIdx int) error {
	td := tree.Data(treeIdx)
	class, leafErr := specialist.MajorityClass(s.cov.LabelsSupport())

	data := s.tr.Data(nodeIdx)
	data.Class = class
	data.LeafError = leafErr
	data.NodeError = td.Error
	data.IsLeaf = td.IsLeaf
	if !td.IsLeaf {
		data.Test = td.Test
	}
	s.tr.SetData(nodeIdx, data)

	if td.IsLeaf {
		return nil
	}

	children := [2]struct {
		value     uint8
		treeChild int
	}{
		{0, tree.Left(treeIdx)},
		{1, tree.Right(treeIdx)},
	}
	for _, child := range children {
		it := item.Item{Attr: td.Test, Value: child.value}
		if _, err := s.cov.Push(it); err != nil {
			return err
		}
		childSet := itemset.Push(it)
		_, childIdx := s.tr.FindOrCreate(childSet)

		err := s.stitch(tree, child.treeChild, childSet, childIdx)
		if backErr := s.cov.Backtrack(); err == nil {
			err = backErr
		}
		if err != nil {
			return err
		}
	}

	return nil
}
