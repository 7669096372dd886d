package config

import "errors"

// ErrUnknownSpecialization is returned when a loaded file's
// "specialization" field is not one of the recognized names.
var ErrUnknownSpecialization = errors.New("config: unknown specialization")

// ErrUnknownLowerBound is returned when a loaded file's "lower_bound"
// field is not one of the recognized names.
var ErrUnknownLowerBound = errors.New("config: unknown lower_bound")

// ErrUnknownHeuristic is returned when a loaded file's "heuristic" field
// is not one of the recognized names.
var ErrUnknownHeuristic = errors.New("config: unknown heuristic")
