package heuristic

import (
	"math"
	"sort"

	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/item"
)

// Sort reorders candidates in place according to order, ranking them by
// each attribute's two branches read from cov's current position via
// Push/LabelsSupport/Backtrack. None and Random leave candidates
// untouched. Ties (within eps) keep their relative input order (stable
// sort), satisfying the "ties broken by attribute index" rule when
// candidates arrives in attribute-index order.
func Sort(candidates []int, cov *coverage.Structure, order Order) error {
	if order == None || order == Random {
		return nil
	}

	for _, a := range candidates {
		if a < 0 || a >= cov.NumAttributes() {
			return ErrAttributeOutOfRange
		}
	}

	parent := cov.LabelsSupport()
	type scored struct {
		attr  int
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, a := range candidates {
		c0, err := branchLabels(cov, a, 0)
		if err != nil {
			return err
		}
		c1, err := branchLabels(cov, a, 1)
		if err != nil {
			return err
		}

		var score float64
		switch order {
		case InfoGain:
			score = infoGain(parent, c0, c1)
		case InfoGainRatio:
			score = infoGainRatio(parent, c0, c1)
		case Gini:
			score = weightedGini(c0, c1)
		}
		ranked[i] = scored{attr: a, score: score}
	}

	switch order {
	case InfoGain, InfoGainRatio:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].score > ranked[j].score+eps
		})
	case Gini:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].score < ranked[j].score-eps
		})
	}

	for i, r := range ranked {
		candidates[i] = r.attr
	}

	return nil
}

// branchLabels reads the labels_support of pushing (attr, value) onto
// cov, leaving cov unchanged afterward.
func branchLabels(cov *coverage.Structure, attr int, value uint8) ([]int, error) {
	if _, err := cov.Push(item.Item{Attr: attr, Value: value}); err != nil {
		return nil, err
	}
	labels := cov.LabelsSupport()

	return labels, cov.Backtrack()
}

func sum(supports []int) int {
	total := 0
	for _, s := range supports {
		total += s
	}

	return total
}

// entropy is the Shannon entropy (base 2) of a class-support vector.
func entropy(supports []int) float64 {
	n := sum(supports)
	if n == 0 {
		return 0
	}

	var h float64
	for _, s := range supports {
		if s == 0 {
			continue
		}
		p := float64(s) / float64(n)
		h -= p * math.Log2(p)
	}

	return h
}

func infoGain(parent, c0, c1 []int) float64 {
	n := sum(parent)
	if n == 0 {
		return 0
	}
	n0, n1 := sum(c0), sum(c1)

	return entropy(parent) - (float64(n0)/float64(n))*entropy(c0) - (float64(n1)/float64(n))*entropy(c1)
}

// splitInfo is the split information of a binary partition of size n
// into (n0, n1); spec.md §4.H: "treat split info = 0 as 1".
func splitInfo(n0, n1, n int) float64 {
	if n == 0 {
		return 1
	}

	var si float64
	for _, ni := range [2]int{n0, n1} {
		if ni == 0 {
			continue
		}
		p := float64(ni) / float64(n)
		si -= p * math.Log2(p)
	}
	if si == 0 {
		return 1
	}

	return si
}

func infoGainRatio(parent, c0, c1 []int) float64 {
	n := sum(parent)
	n0, n1 := sum(c0), sum(c1)

	return infoGain(parent, c0, c1) / splitInfo(n0, n1, n)
}

// gini is the Gini impurity of a single class-support vector.
func gini(supports []int) float64 {
	n := sum(supports)
	if n == 0 {
		return 0
	}

	g := 1.0
	for _, s := range supports {
		p := float64(s) / float64(n)
		g -= p * p
	}

	return g
}

func weightedGini(c0, c1 []int) float64 {
	n0, n1 := sum(c0), sum(c1)
	n := n0 + n1
	if n == 0 {
		return 0
	}

	return (float64(n0)/float64(n))*gini(c0) + (float64(n1)/float64(n))*gini(c1)
}
