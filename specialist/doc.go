// Package specialist implements the depth-≤2 exact specialist (spec.md
// §4.E): Depth1 picks the single best splitting attribute by exhaustive
// misclassification count, and Depth2 jointly picks a root attribute and
// one child attribute per branch from a pairwise contingency table built
// once per candidate set, per class, using matrix.Dense.
//
// Depth1Oracle and Depth2Oracle adapt them to the Oracle interface, letting lgdt's greedy
// recursion (spec.md §4.F) swap between a cheap one-step splitter and
// the combinatorial two-level lookahead without changing its call site.
package specialist
