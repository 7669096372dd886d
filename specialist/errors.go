package specialist

import "errors"

// ErrDuplicateCandidate is returned when a candidate attribute appears
// more than once in the slice passed to Depth2's contingency build.
var ErrDuplicateCandidate = errors.New("specialist: duplicate candidate attribute")
