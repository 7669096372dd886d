package trie

import (
	"math"

	"github.com/katalvlaran/dl85trees/item"
)

// NoTest is the sentinel Test value meaning "no splitting attribute
// decided yet".
const NoTest = -1

// NoClass is the sentinel Class value meaning "no majority class
// recorded yet".
const NoClass = -1

// NodeData is the memoized payload of one trie node (spec.md §3):
//
//	lower_bound <= node_error <= leaf_error
//
// node_error == +Inf means no feasible subtree has yet been proved under
// the active upper bound.
type NodeData struct {
	Test       int     // best splitting attribute found so far, or NoTest
	NodeError  float64 // best proven subtree error, +Inf if unset
	LeafError  float64 // misclassification if this node were a leaf
	LowerBound float64 // proven lower bound on subtree error
	Class      int      // majority class, or NoClass
	IsLeaf     bool     // sealed as a leaf
}

// defaultData is the payload of a freshly created trie node: unproved,
// no test chosen, no class recorded yet.
func defaultData() NodeData {
	return NodeData{
		Test:       NoTest,
		NodeError:  math.Inf(1),
		LeafError:  math.Inf(1),
		LowerBound: 0,
		Class:      NoClass,
		IsLeaf:     false,
	}
}

// trieNode is one entry of the trie's dense node array.
type trieNode struct {
	Data       NodeData
	ParentItem item.Item // the Item that led here from its parent
	Children   []int     // child node indices, in creation order
}

// Trie is an arena of trieNodes; the root (the empty itemset) is always
// at index 0.
type Trie struct {
	nodes []trieNode
}

// NewTrie returns a Trie containing only the root node (itemset = {}).
func NewTrie() *Trie {
	t := &Trie{nodes: make([]trieNode, 1)}
	t.nodes[0].Data = defaultData()

	return t
}

// RootIndex is the index of the empty-itemset node.
const RootIndex = 0

// Data returns the NodeData at idx.
func (t *Trie) Data(idx int) NodeData { return t.nodes[idx].Data }

// SetData overwrites the NodeData at idx.
func (t *Trie) SetData(idx int, data NodeData) { t.nodes[idx].Data = data }

// Size returns the number of memoized nodes, including the root.
func (t *Trie) Size() int { return len(t.nodes) }

// childIndex returns the index of idx's child reached by it, or -1.
func (t *Trie) childIndex(idx int, it item.Item) int {
	for _, c := range t.nodes[idx].Children {
		if t.nodes[c].ParentItem == it {
			return c
		}
	}

	return -1
}
