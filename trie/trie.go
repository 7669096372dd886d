package trie

import "github.com/katalvlaran/dl85trees/item"

// Find returns the index of the node reached by following set from the
// root, or (0, false) if no such path exists yet. set MUST be in
// canonical (sorted) order so permutations of the same itemset always
// resolve to the same node.
func (t *Trie) Find(set item.Itemset) (int, bool) {
	idx := RootIndex
	for _, it := range set {
		c := t.childIndex(idx, it)
		if c < 0 {
			return 0, false
		}
		idx = c
	}

	return idx, true
}

// FindOrCreate returns the index of the node reached by following set
// from the root, creating any missing nodes along the way. created
// reports whether the final destination node (not merely some
// intermediate ancestor) was created by this call.
func (t *Trie) FindOrCreate(set item.Itemset) (created bool, idx int) {
	idx = RootIndex
	for i, it := range set {
		c := t.childIndex(idx, it)
		if c < 0 {
			c = len(t.nodes)
			t.nodes = append(t.nodes, trieNode{Data: defaultData(), ParentItem: it})
			t.nodes[idx].Children = append(t.nodes[idx].Children, c)
			if i == len(set)-1 {
				created = true
			}
		}
		idx = c
	}

	return created, idx
}
