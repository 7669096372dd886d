package specialist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dl85trees/bitset"
	"github.com/katalvlaran/dl85trees/coverage"
	"github.com/katalvlaran/dl85trees/specialist"
)

// perfectSplitFixture: attribute 0 alone perfectly separates the classes,
// attribute 1 is uninformative.
func perfectSplitFixture(t *testing.T) *coverage.Structure {
	t.Helper()
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1}
	features := [][]uint8{
		{0, 0}, {0, 1}, {0, 0}, {0, 1},
		{1, 0}, {1, 1}, {1, 0}, {1, 1},
	}
	d, err := bitset.Build(labels, features, 2, 2)
	require.NoError(t, err)
	s, err := coverage.New(d)
	require.NoError(t, err)

	return s
}

// xorFixture: label = attr0 XOR attr1; attr2 is irrelevant. Neither
// attribute alone improves on the root majority, but attr0-then-attr1
// (or vice versa) separates perfectly.
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

func TestMajorityClassTieBreaksByLowestIndex(t *testing.T) {
	class, err := specialist.MajorityClass([]int{3, 3, 1})
	require.Equal(t, 0, class)
	require.Equal(t, float64(4), err)
}

func TestDepth1FindsPerfectSingleSplit(t *testing.T) {
	s := perfectSplitFixture(t)
	tree, err := specialist.Depth1(s, []int{0, 1}, 1)
	require.NoError(t, err)
	require.False(t, tree.Data(0).IsLeaf)
	require.Equal(t, 0, tree.Data(0).Test)
	require.Equal(t, float64(0), tree.Error())
}

func TestDepth1CannotImproveOnXOR(t *testing.T) {
	s := xorFixture(t)
	tree, err := specialist.Depth1(s, []int{0, 1, 2}, 1)
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
	require.Equal(t, float64(4), tree.Error())
}

func TestDepth1LeavesCoverageUnchanged(t *testing.T) {
	s := perfectSplitFixture(t)
	before := s.Support()
	_, err := specialist.Depth1(s, []int{0, 1}, 1)
	require.NoError(t, err)
	require.Equal(t, before, s.Support())
	require.Equal(t, 0, s.Depth())
}

func TestDepth1RespectsMinSupport(t *testing.T) {
	s := perfectSplitFixture(t)
	tree, err := specialist.Depth1(s, []int{0, 1}, 5)
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
}

func TestDepth2SolvesXORExactly(t *testing.T) {
	s := xorFixture(t)
	tree, err := specialist.Depth2(s, []int{0, 1, 2}, 1)
	require.NoError(t, err)
	require.Equal(t, float64(0), tree.Error())
	require.False(t, tree.Data(0).IsLeaf)

	left := tree.Left(0)
	right := tree.Right(0)
	require.False(t, tree.Data(left).IsLeaf)
	require.False(t, tree.Data(right).IsLeaf)
}

func TestDepth2LeavesCoverageUnchanged(t *testing.T) {
	s := xorFixture(t)
	before := s.Support()
	_, err := specialist.Depth2(s, []int{0, 1, 2}, 1)
	require.NoError(t, err)
	require.Equal(t, before, s.Support())
	require.Equal(t, 0, s.Depth())
}

func TestDepth2FallsBackToLeafWhenStarved(t *testing.T) {
	s := xorFixture(t)
	tree, err := specialist.Depth2(s, []int{0, 1, 2}, 9)
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
	require.Equal(t, float64(4), tree.Error())
}

func TestDepth2OnEmptyCandidatesReturnsRootLeaf(t *testing.T) {
	s := xorFixture(t)
	tree, err := specialist.Depth2(s, nil, 1)
	require.NoError(t, err)
	require.True(t, tree.Data(0).IsLeaf)
	require.Equal(t, float64(4), tree.Error())
}

func TestBuildContingencyRejectsDuplicateCandidates(t *testing.T) {
	s := xorFixture(t)
	_, err := specialist.BuildContingency(s, []int{0, 0})
	require.ErrorIs(t, err, specialist.ErrDuplicateCandidate)
}
