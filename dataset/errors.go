package dataset

import "errors"

// ErrInvalidInput wraps every input-validation failure of
// FormatInputData: min_sup < 1, max_depth < 1, zero classes, zero rows,
// or a non-binary feature value (the latter surfaces via the wrapped
// bitset sentinel, spec.md §7).
var ErrInvalidInput = errors.New("dataset: invalid input")
