package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dl85trees/dl85"
)

// Load reads a YAML file at path and returns the dl85.Config it
// describes, with Ctx defaulted to context.Background(). A zero or
// absent max_time_seconds means unlimited, matching dl85.DefaultConfig.
func Load(path string) (dl85.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return dl85.Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return dl85.Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	specialization, err := parseSpecialization(fc.Specialization)
	if err != nil {
		return dl85.Config{}, err
	}
	lowerBound, err := parseLowerBound(fc.LowerBound)
	if err != nil {
		return dl85.Config{}, err
	}
	order, err := parseHeuristic(fc.Heuristic)
	if err != nil {
		return dl85.Config{}, err
	}

	cfg := dl85.DefaultConfig()
	cfg.Ctx = context.Background()
	cfg.MinSup = fc.MinSup
	cfg.MaxDepth = fc.MaxDepth
	cfg.MaxError = fc.MaxError
	if fc.MaxError == 0 {
		cfg.MaxError = math.Inf(1)
	}
	cfg.MaxTime = time.Duration(fc.MaxTimeSeconds * float64(time.Second))
	cfg.Specialization = specialization
	cfg.LowerBound = lowerBound
	cfg.OneTimeSort = fc.OneTimeSort
	cfg.Heuristic = order

	return cfg, nil
}

// Save writes cfg to path as YAML. Ctx is not serialized: a Load'd
// Config always carries context.Background(), and callers that need
// cooperative cancellation apply dl85.WithContext themselves.
func Save(path string, cfg dl85.Config) error {
	fc := fileConfig{
		MinSup:         cfg.MinSup,
		MaxDepth:       cfg.MaxDepth,
		MaxError:       cfg.MaxError,
		MaxTimeSeconds: cfg.MaxTime.Seconds(),
		Specialization: specializationName(cfg.Specialization),
		LowerBound:     lowerBoundName(cfg.LowerBound),
		OneTimeSort:    cfg.OneTimeSort,
		Heuristic:      heuristicName(cfg.Heuristic),
	}

	raw, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}
