// Package config loads and saves a dl85.Config as YAML (SPEC_FULL §3):
// the search parameters a dl85 run needs, kept in a file separate from
// the in-process functional options, the way a deployed learner would be
// tuned without recompiling.
package config
