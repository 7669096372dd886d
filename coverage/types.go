package coverage

import (
	"github.com/katalvlaran/dl85trees/bitset"
	"github.com/katalvlaran/dl85trees/item"
)

// Structure is the reversible sparse-bitset coverage state of spec.md §3:
// the triple (state, index, limit), plus the stack of pushed Items needed
// for GetPosition and the limit history needed for Backtrack.
//
// state[c] is a stack of 64-bit words for chunk c; top(state[c]) is the
// current active mask. index is a permutation of [0,C) whose prefix
// index[0..=limit] names the "live" chunks (guaranteed non-zero top) and
// whose suffix names chunks proven empty along the current path. limit
// == -1 means coverage is currently empty.
type Structure struct {
	data *bitset.Data

	state [][]uint64 // state[c] = stack of words, c in [0, C)
	index []int      // permutation of [0, C)

	// limitStack[len-1] is the current limit; limitStack always has at
	// least one entry (the base limit set by Reset/New). Each Push
	// appends exactly one entry; each Backtrack removes exactly one.
	limitStack []int

	// pushed mirrors the Items passed to Push, in push order, so that
	// GetPosition can recover the canonical Itemset currently active;
	// Backtrack drops its last entry.
	pushed []item.Item
}

// New builds a Structure whose initial coverage is the full dataset.
func New(data *bitset.Data) (*Structure, error) {
	if data == nil {
		return nil, ErrNilData
	}

	s := &Structure{data: data}
	s.resetState()

	return s, nil
}

// resetState restores state/index/limitStack/pushed to the "nothing
// pushed yet" configuration, without reallocating data.
func (s *Structure) resetState() {
	c := s.data.ChunkCount
	s.state = make([][]uint64, c)
	s.index = make([]int, c)
	for i := 0; i < c; i++ {
		s.index[i] = i
		s.state[i] = []uint64{s.data.FullMask(i)}
	}
	s.limitStack = []int{c - 1}
	s.pushed = s.pushed[:0]
}

// top returns the current active mask for original chunk index c.
func (s *Structure) top(c int) uint64 {
	stk := s.state[c]

	return stk[len(stk)-1]
}

// limit returns the current limit (top of limitStack).
func (s *Structure) limit() int {
	return s.limitStack[len(s.limitStack)-1]
}

// NumAttributes returns A.
func (s *Structure) NumAttributes() int { return s.data.NumAttributes }

// NumLabels returns K.
func (s *Structure) NumLabels() int { return s.data.NumLabels }

// GetPosition returns the canonical Itemset of all Items currently
// pushed, in attribute order. The returned Itemset is a fresh copy.
func (s *Structure) GetPosition() item.Itemset {
	return item.Canonicalize(s.pushed)
}

// Depth returns the number of Items currently pushed.
func (s *Structure) Depth() int {
	return len(s.pushed)
}
