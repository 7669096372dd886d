package coverage

import (
	"math/bits"

	"github.com/katalvlaran/dl85trees/item"
)

// Support returns the number of examples currently active.
func (s *Structure) Support() int {
	total := 0
	for i := 0; i <= s.limit(); i++ {
		total += bits.OnesCount64(s.top(s.index[i]))
	}

	return total
}

// LabelSupport returns the number of active examples with class y.
func (s *Structure) LabelSupport(y int) (int, error) {
	if y < 0 || y >= s.data.NumLabels {
		return 0, ErrLabelOutOfRange
	}

	col := s.data.Labels[y]
	total := 0
	for i := 0; i <= s.limit(); i++ {
		c := s.index[i]
		total += bits.OnesCount64(col[c] & s.top(c))
	}

	return total, nil
}

// LabelsSupport returns the per-class partition of Support(), one scan of
// the live chunks shared across all K classes (spec.md §4.B: "for general
// K, scan each label column similarly" — done here in a single pass).
func (s *Structure) LabelsSupport() []int {
	out := make([]int, s.data.NumLabels)
	lim := s.limit()
	for i := 0; i <= lim; i++ {
		c := s.index[i]
		w := s.top(c)
		if w == 0 {
			continue
		}
		for y := 0; y < s.data.NumLabels; y++ {
			out[y] += bits.OnesCount64(s.data.Labels[y][c] & w)
		}
	}

	return out
}

// maskFor computes the masked word that pushing it would produce for
// chunk c, given its current top word w.
func maskFor(it item.Item, col []uint64, c int, w uint64) uint64 {
	if it.Value == 1 {
		return w & col[c]
	}

	return w &^ col[c]
}

// Push narrows coverage to examples consistent with it, returning the new
// Support(). It mutates state, index, and limitStack; the matching
// Backtrack call undoes exactly this mutation (spec.md §4.B).
func (s *Structure) Push(it item.Item) (int, error) {
	if it.Attr < 0 || it.Attr >= s.data.NumAttributes {
		return 0, ErrAttributeOutOfRange
	}

	col := s.data.Features[it.Attr]
	lim := s.limit()
	for i := lim; i >= 0; i-- {
		c := s.index[i]
		wp := maskFor(it, col, c, s.top(c))
		if wp == 0 {
			s.index[i], s.index[lim] = s.index[lim], s.index[i]
			lim--
		} else {
			s.state[c] = append(s.state[c], wp)
		}
	}
	s.limitStack = append(s.limitStack, lim)
	s.pushed = append(s.pushed, it)

	return s.Support(), nil
}

// Backtrack undoes the most recently pushed Item exactly, restoring
// state, index (as a set-equal prefix/suffix partition), and limitStack
// to their pre-push values.
func (s *Structure) Backtrack() error {
	if len(s.limitStack) <= 1 {
		return ErrEmptyStack
	}

	newLimit := s.limitStack[len(s.limitStack)-1]
	s.limitStack = s.limitStack[:len(s.limitStack)-1]
	if newLimit >= 0 {
		for i := 0; i <= newLimit; i++ {
			c := s.index[i]
			s.state[c] = s.state[c][:len(s.state[c])-1]
		}
	}
	s.pushed = s.pushed[:len(s.pushed)-1]

	return nil
}

// TempPush returns the Support() that Push(it) would yield, without
// mutating state, index, or limitStack. O(live chunks), allocation-free.
func (s *Structure) TempPush(it item.Item) (int, error) {
	if it.Attr < 0 || it.Attr >= s.data.NumAttributes {
		return 0, ErrAttributeOutOfRange
	}

	col := s.data.Features[it.Attr]
	total := 0
	for i := 0; i <= s.limit(); i++ {
		c := s.index[i]
		total += bits.OnesCount64(maskFor(it, col, c, s.top(c)))
	}

	return total, nil
}

// Snapshot returns the current active mask of every original chunk
// index, zero for any chunk proven empty along the current path. It is
// a fresh copy cheap enough to take at every trie node, used by dl85's
// optional similarity lower bound (spec.md §9) to compute |cur \ prev|
// between two coverage positions without re-deriving bit masks from
// their itemsets.
func (s *Structure) Snapshot() []uint64 {
	out := make([]uint64, s.data.ChunkCount)
	for i := 0; i <= s.limit(); i++ {
		c := s.index[i]
		out[c] = s.top(c)
	}

	return out
}

// Reset drops all pushed Items, returning to the initial full-dataset
// coverage.
func (s *Structure) Reset() {
	s.resetState()
}

// ChangePosition resets, then pushes each Item of set in order. It stops
// and returns an error on the first invalid Item, leaving the Structure
// at whatever depth it reached (callers that need strict all-or-nothing
// semantics should call Reset() again on error).
func (s *Structure) ChangePosition(set item.Itemset) error {
	s.Reset()
	for _, it := range set {
		if _, err := s.Push(it); err != nil {
			return err
		}
	}

	return nil
}
