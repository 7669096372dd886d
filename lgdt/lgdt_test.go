package lgdt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dl85trees/bitset"
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/lgdt"
	"github.com/katalvlaran/dl85trees/specialist"
)

// xorFixture: label = attr0 XOR attr1; attr2 is irrelevant.
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

func TestFitRejectsNilCoverage(t *testing.T) {
	_, err := lgdt.FitCoverage(nil)
	require.ErrorIs(t, err, lgdt.ErrNilCoverage)
}

func TestFitRejectsMaxDepthBelowOne(t *testing.T) {
	s := xorFixture(t)
	_, err := lgdt.FitCoverage(s, lgdt.WithMaxDepth(0))
	require.ErrorIs(t, err, lgdt.ErrMaxDepthTooSmall)
}

func TestFitWithDepth2OracleSolvesXORAtBudgetTwo(t *testing.T) {
	s := xorFixture(t)
	tree, err := lgdt.FitCoverage(s, lgdt.WithMaxDepth(2), lgdt.WithOracle(specialist.Depth2Oracle{}))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
}

func TestFitWithDepth2OracleSolvesXORThroughRecursionAtBudgetThree(t *testing.T) {
	s := xorFixture(t)
	tree, err := lgdt.FitCoverage(s, lgdt.WithMaxDepth(3), lgdt.WithOracle(specialist.Depth2Oracle{}))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
}

func TestFitWithDepth1OracleCannotEscapeXOR(t *testing.T) {
	s := xorFixture(t)
	tree, err := lgdt.FitCoverage(s, lgdt.WithMaxDepth(3), lgdt.WithOracle(specialist.Depth1Oracle{}))
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
	require.Equal(t, float64(4), tree.Error())
}

func TestFitLeavesCoverageAtOriginalPosition(t *testing.T) {
	s := xorFixture(t)
	before := s.Support()
	_, err := lgdt.FitCoverage(s, lgdt.WithMaxDepth(3))
	require.NoError(t, err)
	require.Equal(t, before, s.Support())
	require.Equal(t, 0, s.Depth())
}

func TestFitRespectsMinSupportStarvation(t *testing.T) {
	s := xorFixture(t)
	tree, err := lgdt.FitCoverage(s, lgdt.WithMaxDepth(3), lgdt.WithMinSupport(9))
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
}

func TestFitHonorsCancelledContext(t *testing.T) {
	s := xorFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lgdt.FitCoverage(s, lgdt.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFitFromRawDatasetMatchesFitCoverage(t *testing.T) {
	labels := []int{0, 0, 1, 1, 1, 1, 0, 0}
	features := [][]uint8{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}

	tree, err := lgdt.Fit(labels, features, 3, 2, lgdt.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
}

func TestFitFromRawDatasetRejectsInvalidInput(t *testing.T) {
	_, err := lgdt.Fit(nil, nil, 3, 2, lgdt.WithMaxDepth(2))
	require.Error(t, err)
}
