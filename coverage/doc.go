// Package coverage implements the reversible sparse-bitset coverage
// structure that both the greedy (lgdt) and optimal (dl85) learners
// narrow as they descend a search path: a Structure tracks the set of
// training examples still consistent with the items pushed so far,
// supporting O(1)-amortized Push/Backtrack via a per-chunk stack of
// 64-bit words and a swap-to-tail sparsification that permanently skips
// chunks once they go empty along the current path (spec.md §3, §4.B).
//
// Structure is owned by exactly one search invocation; it carries no
// locks and is never read or mutated concurrently.
package coverage
