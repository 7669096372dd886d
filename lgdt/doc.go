// Package lgdt implements the locally-greedy decision tree learner of
// spec.md §4.F: at every node it asks a specialist.Oracle for this
// position's best depth-≤2 decision, commits only to the oracle's root
// attribute, and recurses independently on each branch until the
// configured max depth is exhausted — never backtracking on a decision
// once made, unlike dl85's exhaustive branch-and-bound search.
package lgdt
