// Package bitset packs a row-major (labels, binary feature matrix) dataset
// into column-major 64-bit chunk sequences: one bitset per attribute and
// one per class label, each C = ceil(N/64) chunks wide. Rows are placed in
// reverse order (row r in chunk C-1-r/64) so that the "dead" high bits of
// an incomplete final word land in chunk 0, which format_input_data clears
// once so population counts over the whole bitset are always exact.
//
// This package only builds the packed columns; coverage.Structure is what
// gives them reversible push/pop semantics.
package bitset
