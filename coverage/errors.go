package coverage

import "errors"

// Sentinel errors for coverage.Structure construction and use.
var (
	// ErrNilData indicates New was called with a nil *bitset.Data.
	ErrNilData = errors.New("coverage: bitset data is nil")

	// ErrAttributeOutOfRange indicates an Item referenced an attribute
	// index outside [0, num_attributes).
	ErrAttributeOutOfRange = errors.New("coverage: attribute index out of range")

	// ErrLabelOutOfRange indicates a label index outside [0, num_labels).
	ErrLabelOutOfRange = errors.New("coverage: label index out of range")

	// ErrEmptyStack indicates Backtrack was called with no matching Push.
	ErrEmptyStack = errors.New("coverage: backtrack without a matching push")
)
