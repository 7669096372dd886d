package dl85

import (
	"math/bits"

	"github.com/katalvlaran/dl85trees/coverage"
)

// similarityRecord remembers one subproblem's active-row snapshot and
// the lower bound proved for it, so a later, similar subproblem (few
// rows differ) can reuse that proof without re-exploring (spec.md §9:
// "stores the bitset of a previously proved infeasible subproblem and
// computes |cur \ prev| as a lower bound on additional unavoidable
// misclassifications").
type similarityRecord struct {
	mask  []uint64
	bound float64
}

// similarityTracker accumulates similarityRecords for the run. Per
// DESIGN.md's Open Question decision, a record is only added when a
// subtree's branch loop completes without finding a feasible split
// (tightening its lower bound), never on an early bound-pruned return
// and never for a subtree that sealed a finite error.
type similarityTracker struct {
	records []similarityRecord
}

// refine returns the larger of baseline and any record's bound minus
// the popcount of rows cur has that the record's snapshot didn't —
// each such row could, in the worst case, have been a row the prior
// proof relied on being absent, so the bound degrades by at most one
// per extra row.
func (t *similarityTracker) refine(cur []uint64, baseline float64) float64 {
	if t == nil {
		return baseline
	}

	best := baseline
	for _, r := range t.records {
		diff := diffPopcount(cur, r.mask)
		candidate := r.bound - float64(diff)
		if candidate > best {
			best = candidate
		}
	}
	if best < 0 {
		best = 0
	}

	return best
}

// record adds a new similarityRecord from cov's current position.
func (t *similarityTracker) record(cov *coverage.Structure, bound float64) {
	if t == nil {
		return
	}
	t.records = append(t.records, similarityRecord{mask: cov.Snapshot(), bound: bound})
}

// diffPopcount computes |cur \ prev| (bit count of cur with prev's bits
// removed), chunk by chunk.
func diffPopcount(cur, prev []uint64) int {
	total := 0
	for i, w := range cur {
		var p uint64
		if i < len(prev) {
			p = prev[i]
		}
		total += bits.OnesCount64(w &^ p)
	}

	return total
}
