// Package export converts a dtree.Tree into a flat, JSON-serializable
// slice of Records in pre-order, a thin adapter for callers that want to
// hand a learned tree to an external collaborator (spec.md §6).
package export
