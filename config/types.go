package config

import (
	"fmt"

	"github.com/katalvlaran/dl85trees/dl85"
	"github.com/katalvlaran/dl85trees/heuristic"
)

// fileConfig is the YAML-serializable shadow of dl85.Config. It omits
// Ctx (not serializable) and spells enum fields as names rather than
// raw ints, so a hand-edited file reads like "heuristic: info-gain"
// instead of a magic number.
type fileConfig struct {
	MinSup         int     `yaml:"min_sup"`
	MaxDepth       int     `yaml:"max_depth"`
	MaxError       float64 `yaml:"max_error"`
	MaxTimeSeconds float64 `yaml:"max_time_seconds"`
	Specialization string  `yaml:"specialization"`
	LowerBound     string  `yaml:"lower_bound"`
	OneTimeSort    bool    `yaml:"one_time_sort"`
	Heuristic      string  `yaml:"heuristic"`
}

func specializationName(s dl85.Specialization) string {
	if s == dl85.Depth2Specialization {
		return "depth2"
	}

	return "none"
}

func parseSpecialization(name string) (dl85.Specialization, error) {
	switch name {
	case "", "none":
		return dl85.NoSpecialization, nil
	case "depth2":
		return dl85.Depth2Specialization, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpecialization, name)
	}
}

func lowerBoundName(l dl85.LowerBoundKind) string {
	if l == dl85.SimilarityLowerBound {
		return "similarity"
	}

	return "none"
}

func parseLowerBound(name string) (dl85.LowerBoundKind, error) {
	switch name {
	case "", "none":
		return dl85.NoLowerBound, nil
	case "similarity":
		return dl85.SimilarityLowerBound, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLowerBound, name)
	}
}

func heuristicName(o heuristic.Order) string {
	return o.String()
}

func parseHeuristic(name string) (heuristic.Order, error) {
	switch name {
	case "", "info-gain":
		return heuristic.InfoGain, nil
	case "info-gain-ratio":
		return heuristic.InfoGainRatio, nil
	case "gini":
		return heuristic.Gini, nil
	case "none":
		return heuristic.None, nil
	case "random":
		return heuristic.Random, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}
