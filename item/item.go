package item

import "sort"

// Item is a single binary test: attribute Attr equals Value (0 or 1).
type Item struct {
	Attr  int
	Value uint8
}

// Itemset is a canonicalized, insertion-order-independent set of Items.
// By construction it never holds two Items with the same Attr.
type Itemset []Item

// Canonicalize returns a copy of items sorted by ascending Attr, so that
// permutations of the same itemset compare and hash identically. Ties on
// Attr cannot occur in a well-formed Itemset (one branch per attribute);
// if the caller passes a malformed slice with duplicate attributes, all
// occurrences are kept, in their original relative order (stable sort).
func Canonicalize(items []Item) Itemset {
	out := make(Itemset, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Attr < out[j].Attr })

	return out
}

// Push returns a new canonicalized Itemset equal to set with it appended.
// set is never mutated.
func (set Itemset) Push(it Item) Itemset {
	grown := make([]Item, 0, len(set)+1)
	grown = append(grown, set...)
	grown = append(grown, it)

	return Canonicalize(grown)
}

// Equal reports whether two canonical Itemsets contain the same Items.
func (set Itemset) Equal(other Itemset) bool {
	if len(set) != len(other) {
		return false
	}
	for i := range set {
		if set[i] != other[i] {
			return false
		}
	}

	return true
}

// String renders an Itemset as "(a=v),(a=v),...", sorted, for debugging
// and deterministic test fixture names.
func (set Itemset) String() string {
	s := make([]byte, 0, 8*len(set))
	for i, it := range set {
		if i > 0 {
			s = append(s, ',')
		}
		s = append(s, '(')
		s = appendInt(s, it.Attr)
		s = append(s, '=')
		s = append(s, '0'+it.Value)
		s = append(s, ')')
	}

	return string(s)
}

// appendInt appends the decimal representation of a non-negative int.
func appendInt(dst []byte, v int) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	start := len(dst)
	for v > 0 {
		dst = append(dst, byte('0'+v%10))
		v /= 10
	}
	// reverse the appended digits
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}

	return dst
}
