package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dl85trees/config"
	"github.com/katalvlaran/dl85trees/dl85"
	"github.com/katalvlaran/dl85trees/heuristic"
)

func TestSaveThenLoadRoundTripsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl85.yaml")

	cfg := dl85.DefaultConfig()
	cfg.MinSup = 3
	cfg.MaxDepth = 4
	cfg.MaxError = 12
	cfg.MaxTime = 5 * time.Second
	cfg.Specialization = dl85.Depth2Specialization
	cfg.LowerBound = dl85.SimilarityLowerBound
	cfg.OneTimeSort = false
	cfg.Heuristic = heuristic.Gini

	require.NoError(t, config.Save(path, cfg))

	loaded, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, cfg.MinSup, loaded.MinSup)
	require.Equal(t, cfg.MaxDepth, loaded.MaxDepth)
	require.Equal(t, cfg.MaxError, loaded.MaxError)
	require.Equal(t, cfg.MaxTime, loaded.MaxTime)
	require.Equal(t, cfg.Specialization, loaded.Specialization)
	require.Equal(t, cfg.LowerBound, loaded.LowerBound)
	require.Equal(t, cfg.OneTimeSort, loaded.OneTimeSort)
	require.Equal(t, cfg.Heuristic, loaded.Heuristic)
}

func TestLoadDefaultsUnboundedMaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl85.yaml")
	require.NoError(t, config.Save(path, dl85.DefaultConfig()))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, math.IsInf(loaded.MaxError, 1))
}

func TestLoadRejectsUnknownHeuristic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl85.yaml")
	content := []byte("min_sup: 1\nmax_depth: 2\nheuristic: bogus\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrUnknownHeuristic)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
