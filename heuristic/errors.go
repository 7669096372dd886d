package heuristic

import "errors"

// ErrAttributeOutOfRange is returned when Sort is given a candidate
// attribute index the underlying coverage.Structure does not know about.
var ErrAttributeOutOfRange = errors.New("heuristic: attribute index out of range")
