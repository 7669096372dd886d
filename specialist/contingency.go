package specialist

import (
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/item"
	"github.com/katalvlaran/dl85trees/matrix"
)

// Contingency is the pairwise class-support table of spec.md §4.E: for
// every ordered pair (i, j) of candidate attributes, M[y].At(i, j) holds
// the support of class y among examples with attrs[i]=1 and attrs[j]=1;
// the diagonal M[y].At(i, i) holds the support of class y among examples
// with attrs[i]=1 alone. One matrix.Dense per class keeps the lookup
// O(1) once built.
type Contingency struct {
	Attrs []int
	Root  []int // labels_support at the position the table was built from
	M     []*matrix.Dense
}

// BuildContingency computes a Contingency for candidates at cov's
// current position. It leaves cov unchanged. Complexity is O(|candidates|^2)
// pushes, each O(live chunks), matching the specialist's documented cost
// (spec.md §4.E).
func BuildContingency(cov *coverage.Structure, candidates []int) (*Contingency, error) {
	seen := make(map[int]struct{}, len(candidates))
	for _, a := range candidates {
		if _, dup := seen[a]; dup {
			return nil, ErrDuplicateCandidate
		}
		seen[a] = struct{}{}
	}

	k := cov.NumLabels()
	n := len(candidates)
	ct := &Contingency{
		Attrs: append([]int(nil), candidates...),
		Root:  cov.LabelsSupport(),
		M:     make([]*matrix.Dense, k),
	}
	for y := 0; y < k; y++ {
		d, err := matrix.NewDense(max(n, 1), max(n, 1))
		if err != nil {
			return nil, err
		}
		ct.M[y] = d
	}
	if n == 0 {
		return ct, nil
	}

	for i := 0; i < n; i++ {
		if _, err := cov.Push(item.Item{Attr: candidates[i], Value: 1}); err != nil {
			return nil, err
		}
		diag := cov.LabelsSupport()
		for y := 0; y < k; y++ {
			if err := ct.M[y].Set(i, i, float64(diag[y])); err != nil {
				return nil, err
			}
		}

		for j := i + 1; j < n; j++ {
			if _, err := cov.Push(item.Item{Attr: candidates[j], Value: 1}); err != nil {
				return nil, err
			}
			pair := cov.LabelsSupport()
			for y := 0; y < k; y++ {
				if err := ct.M[y].Set(i, j, float64(pair[y])); err != nil {
					return nil, err
				}
				if err := ct.M[y].Set(j, i, float64(pair[y])); err != nil {
					return nil, err
				}
			}
			if err := cov.Backtrack(); err != nil {
				return nil, err
			}
		}

		if err := cov.Backtrack(); err != nil {
			return nil, err
		}
	}

	return ct, nil
}

// LeafSupport derives the class-support vector of the leaf reached by
// (attrs[i]=fv, attrs[j]=sv), i != j, using the inclusion-exclusion
// identity of spec.md §4.E: the four leaves of a two-attribute split
// partition Root, so three of them are read straight off M and the
// fourth (both branches 0) is whatever Root leaves over.
func (ct *Contingency) LeafSupport(i, j int, fv, sv uint8) []int {
	k := len(ct.Root)
	out := make([]int, k)
	for y := 0; y < k; y++ {
		l := float64(ct.Root[y])
		mii, _ := ct.M[y].At(i, i)
		mjj, _ := ct.M[y].At(j, j)
		mij, _ := ct.M[y].At(i, j)

		var v float64
		switch {
		case fv == 0 && sv == 0:
			v = l - mii - mjj + mij
		case fv == 0 && sv == 1:
			v = mjj - mij
		case fv == 1 && sv == 0:
			v = mii - mij
		default: // fv == 1 && sv == 1
			v = mij
		}
		out[y] = int(v + 0.5)
	}

	return out
}
