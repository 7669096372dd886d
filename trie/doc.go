// Package trie implements the itemset memoization cache of spec.md
// §3/§4.D: a trie whose edges are keyed by canonical (attribute, value)
// Items, so that permutations of the same itemset always reach the same
// node. Each node memoizes a dl85 subproblem: the best test found so
// far, its proven node_error and lower_bound, its leaf_error, and its
// majority class.
package trie
