// Package dl85trees learns binary decision trees over binary-feature,
// multi-class tabular data.
//
// Two learners share one reversible sparse-bitset coverage structure
// (package coverage):
//
//	lgdt/ — a locally-greedy learner that asks a pluggable Oracle
//	        (package specialist) for each node's root test and recurses
//	        independently per branch.
//	dl85/ — a DL8.5-style branch-and-bound search that proves each
//	        subtree optimal, memoized in a trie keyed by canonical
//	        itemsets (package trie), with an optional depth-≤2
//	        specialist shortcut and an optional similarity lower bound.
//
// Training data is bit-packed once via package dataset
// (dataset.NewCoverage) and shared by both learners. A learned tree
// (package dtree) can be flattened to JSON-serializable records via
// package export, and a dl85.Config can be loaded from or saved to YAML
// via package config.
package dl85trees
