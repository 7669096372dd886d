package dtree

// AddNode appends data as a new node and returns its index. If t is
// non-empty, the new node is wired as parent's left (isLeft) or right
// child. The very first call on an empty Tree ignores parent/isLeft and
// returns index 0, the root (spec.md §4.C).
func (t *Tree) AddNode(parent int, isLeft bool, data NodeData) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{Data: data})

	if idx != 0 {
		if isLeft {
			t.nodes[parent].Left = idx
		} else {
			t.nodes[parent].Right = idx
		}
	}

	return idx
}

// MoveTree deep-copies the subtree rooted at src[srcIdx] into
// dest[destIdx], preserving topology but allocating fresh indices in
// dest. destIdx must already exist in dest (e.g. a placeholder node);
// its Data and children are fully overwritten. lgdt uses it to splice
// each branch's independently grown subtree into its parent's tree.
func MoveTree(dest *Tree, destIdx int, src *Tree, srcIdx int) {
	srcNode := src.nodes[srcIdx]
	dest.nodes[destIdx].Data = srcNode.Data
	dest.nodes[destIdx].Left = 0
	dest.nodes[destIdx].Right = 0

	if srcNode.Left != 0 {
		childIdx := len(dest.nodes)
		dest.nodes = append(dest.nodes, node{})
		dest.nodes[destIdx].Left = childIdx
		MoveTree(dest, childIdx, src, srcNode.Left)
	}
	if srcNode.Right != 0 {
		childIdx := len(dest.nodes)
		dest.nodes = append(dest.nodes, node{})
		dest.nodes[destIdx].Right = childIdx
		MoveTree(dest, childIdx, src, srcNode.Right)
	}
}

// Walk visits node indices in pre-order (node, then left subtree, then
// right subtree), starting from root index 0. It is a no-op on an empty
// tree.
func (t *Tree) Walk(visit func(idx int)) {
	if t.IsEmpty() {
		return
	}
	t.walk(0, visit)
}

func (t *Tree) walk(idx int, visit func(idx int)) {
	visit(idx)
	if l := t.nodes[idx].Left; l != 0 {
		t.walk(l, visit)
	}
	if r := t.nodes[idx].Right; r != 0 {
		t.walk(r, visit)
	}
}
