package dl85_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dl85trees/bitset"
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/dl85"
	"github.com/katalvlaran/dl85trees/export"
	"github.com/katalvlaran/dl85trees/heuristic"
	"github.com/katalvlaran/dl85trees/lgdt"
	"github.com/katalvlaran/dl85trees/specialist"
)

// xorFixture: label = attr0 XOR attr1; attr2 is irrelevant. Root majority
// error is 4; no single attribute improves on it; attr0-then-attr1 (in
// either order) is the unique zero-error tree.
func xorFixture(t *testing.T) *coverage.Structure {
	t.Helper()
	labels := []int{0, 0, 1, 1, 1, 1, 0, 0}
	features := [][]uint8{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	d, err := bitset.Build(labels, features, 3, 2)
	require.NoError(t, err)
	s, err := coverage.New(d)
	require.NoError(t, err)

	return s
}

func TestFitCoverageRejectsNilCoverage(t *testing.T) {
	_, _, err := dl85.FitCoverage(nil)
	require.ErrorIs(t, err, dl85.ErrNilCoverage)
}

func TestFitCoverageRejectsInvalidConfig(t *testing.T) {
	s := xorFixture(t)
	_, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(0))
	require.ErrorIs(t, err, dl85.ErrInvalidConfig)

	_, _, err = dl85.FitCoverage(s, dl85.WithMinSupport(0))
	require.ErrorIs(t, err, dl85.ErrInvalidConfig)
}

func TestFitCoverageSolvesXORExactlyAtDepthTwo(t *testing.T) {
	s := xorFixture(t)
	tree, stats, err := dl85.FitCoverage(s, dl85.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
	require.Equal(t, float64(0), stats.TreeError)
	require.Equal(t, 8, stats.NumSamples)
	require.Equal(t, 3, stats.NumAttributes)
}

func TestFitCoverageSolvesXORAtDepthThreeWithoutSpecialization(t *testing.T) {
	s := xorFixture(t)
	tree, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(3), dl85.WithSpecialization(dl85.NoSpecialization))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
}

func TestFitCoverageSolvesXORWithSimilarityLowerBound(t *testing.T) {
	s := xorFixture(t)
	tree, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(3), dl85.WithLowerBound(dl85.SimilarityLowerBound))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
}

func TestFitCoverageSolvesXORWithoutOneTimeSort(t *testing.T) {
	s := xorFixture(t)
	tree, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(3), dl85.WithOneTimeSort(false))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
}

func TestFitCoverageRespectsMaxErrorUpperBound(t *testing.T) {
	s := xorFixture(t)
	tree, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(1), dl85.WithMaxError(3))
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
	require.Equal(t, float64(4), tree.Error())
}

func TestFitCoverageLeavesCoverageAtOriginalPosition(t *testing.T) {
	s := xorFixture(t)
	before := s.Support()
	_, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(3))
	require.NoError(t, err)
	require.Equal(t, before, s.Support())
	require.Equal(t, 0, s.Depth())
}

func TestFitCoverageHonorsCancelledContext(t *testing.T) {
	s := xorFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := dl85.FitCoverage(s, dl85.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFitCoverageRespectsMinSupportStarvation(t *testing.T) {
	s := xorFixture(t)
	tree, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(3), dl85.WithMinSupport(5))
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
}

func TestFitCoverageWithRandomHeuristicStillSolvesXOR(t *testing.T) {
	s := xorFixture(t)
	tree, _, err := dl85.FitCoverage(s, dl85.WithMaxDepth(3), dl85.WithHeuristic(heuristic.Random))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
}

func TestFitFromRawDatasetMatchesFitCoverage(t *testing.T) {
	labels := []int{0, 0, 1, 1, 1, 1, 0, 0}
	features := [][]uint8{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}

	tree, stats, err := dl85.Fit(labels, features, 3, 2, dl85.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
	require.Equal(t, 8, stats.NumSamples)
}

func TestFitFromRawDatasetRejectsInvalidInput(t *testing.T) {
	_, _, err := dl85.Fit(nil, nil, 3, 2, dl85.WithMaxDepth(2))
	require.Error(t, err)
}

// TestDL85ErrorNeverExceedsLGDT is spec.md §8 invariant 6: for identical
// (min_sup, max_depth), the optimal learner's tree_error never exceeds a
// locally-greedy learner's, and on XOR it is strictly better since a
// pure depth-1 oracle can never escape the pattern.
func TestDL85ErrorNeverExceedsLGDT(t *testing.T) {
	labels := []int{0, 0, 1, 1, 1, 1, 0, 0}
	features := [][]uint8{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}

	optimal, _, err := dl85.Fit(labels, features, 3, 2, dl85.WithMaxDepth(3))
	require.NoError(t, err)

	greedy, err := lgdt.Fit(labels, features, 3, 2, lgdt.WithMaxDepth(3), lgdt.WithOracle(specialist.Depth1Oracle{}))
	require.NoError(t, err)

	require.LessOrEqual(t, optimal.Error(), greedy.Error())
	require.Less(t, optimal.Error(), greedy.Error())
}

// TestSimilarityLowerBoundNeverChangesProvenError is spec.md §8
// invariant 7 (lower-bound soundness) exercised end to end: a sound
// lower bound only prunes branches that could never improve the
// result, so enabling it must never change the final proven error.
func TestSimilarityLowerBoundNeverChangesProvenError(t *testing.T) {
	s1 := xorFixture(t)
	plain, _, err := dl85.FitCoverage(s1, dl85.WithMaxDepth(3), dl85.WithLowerBound(dl85.NoLowerBound))
	require.NoError(t, err)

	s2 := xorFixture(t)
	refined, _, err := dl85.FitCoverage(s2, dl85.WithMaxDepth(3), dl85.WithLowerBound(dl85.SimilarityLowerBound))
	require.NoError(t, err)

	require.Equal(t, plain.Error(), refined.Error())
}

// TestDeterministicTies is spec.md §8 invariant 8: two runs with
// identical configuration produce byte-identical tree exports.
func TestDeterministicTies(t *testing.T) {
	s1 := xorFixture(t)
	tree1, _, err := dl85.FitCoverage(s1, dl85.WithMaxDepth(3))
	require.NoError(t, err)

	s2 := xorFixture(t)
	tree2, _, err := dl85.FitCoverage(s2, dl85.WithMaxDepth(3))
	require.NoError(t, err)

	require.Equal(t, export.Export(tree1), export.Export(tree2))
}
