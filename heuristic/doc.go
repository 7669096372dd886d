// Package heuristic orders candidate attributes for dl85's branch loop
// (spec.md §4.H): information gain, information gain ratio, Gini
// impurity, or no reordering at all. Every reordering reads each
// candidate's two branches via
// coverage.Structure's Push/LabelsSupport/Backtrack and compares floats
// with a small epsilon tolerance so near-ties break by original
// (attribute-index) order via a stable sort.
package heuristic
