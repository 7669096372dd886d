// Package matrix provides a minimal row-major dense float64 matrix.
//
// It backs the depth-≤2 specialist's pairwise contingency table
// (M[i][j] in spec.md §4.E): given a set of candidate attributes, the
// specialist pushes item pairs onto a coverage.Structure and records each
// pair's labels_support in a Dense matrix, then recovers all four leaf
// class-supports of any depth-2 split from M by arithmetic alone.
package matrix
