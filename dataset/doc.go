// Package dataset is the boundary between raw row-major training data
// and the core's bit-packed coverage.Structure (spec.md §4.A, §6):
// FormatInputData validates and packs (labels, features) into a
// bitset.Data; NewCoverage goes one step further and returns a ready-to-
// search coverage.Structure. Dataset parsing from text/CSV and other
// ingestion bridges are out of scope (spec.md §1) — callers already
// have labels and a 0/1 feature matrix in memory.
package dataset
