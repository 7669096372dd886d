// Package dl85 implements the DL8.5-style branch-and-bound optimal
// decision tree search of spec.md §4.G: a depth-bounded recursion over
// item-pair branchings, pruned by an upper bound and an optional
// similarity lower bound, memoized in a trie keyed by canonical
// itemsets, with an optional depth-≤2 specialist shortcut for the last
// two levels of any subtree.
package dl85
