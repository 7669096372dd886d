package dtree

import "math"

// NodeData is the tagged payload of a node: exactly one of Leaf or
// Internal semantics is meaningful, selected by IsLeaf. spec.md §9
// fixes this single tagged variant rather than a generic payload, to
// remove the need for dispatch.
type NodeData struct {
	IsLeaf bool
	Class  int     // majority class; meaningful iff IsLeaf
	Test   int     // splitting attribute; meaningful iff !IsLeaf
	Error  float64 // misclassification (leaf) or subtree error (internal)
}

// Leaf builds a Leaf NodeData.
func Leaf(class int, errCount float64) NodeData {
	return NodeData{IsLeaf: true, Class: class, Error: errCount}
}

// Internal builds an Internal NodeData testing attribute test.
func Internal(test int, errCount float64) NodeData {
	return NodeData{IsLeaf: false, Test: test, Error: errCount}
}

// node is one entry of a Tree's dense node array.
type node struct {
	Data        NodeData
	Left, Right int // 0 = no child
}

// Tree is an append-only, index-addressed array of decision nodes. The
// root, once added, is always at index 0; a child index of 0 elsewhere
// means "absent" (spec.md §3, §4.C).
type Tree struct {
	nodes []node
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{}
}

// IsEmpty reports whether no node has been added yet.
func (t *Tree) IsEmpty() bool { return len(t.nodes) == 0 }

// NumNodes returns the number of nodes in the tree.
func (t *Tree) NumNodes() int { return len(t.nodes) }

// Data returns the NodeData stored at idx.
func (t *Tree) Data(idx int) NodeData { return t.nodes[idx].Data }

// SetData overwrites the NodeData stored at idx.
func (t *Tree) SetData(idx int, data NodeData) { t.nodes[idx].Data = data }

// Left returns the left child index of idx, or 0 if absent.
func (t *Tree) Left(idx int) int { return t.nodes[idx].Left }

// Right returns the right child index of idx, or 0 if absent.
func (t *Tree) Right(idx int) int { return t.nodes[idx].Right }

// Error returns the root's subtree error, or +Inf for an empty tree.
func (t *Tree) Error() float64 {
	if t.IsEmpty() {
		return math.Inf(1)
	}

	return t.nodes[0].Data.Error
}
