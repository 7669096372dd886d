package item_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dl85trees/item"
)

func TestCanonicalizeSortsByAttribute(t *testing.T) {
	in := []item.Item{{Attr: 3, Value: 1}, {Attr: 1, Value: 0}, {Attr: 2, Value: 1}}
	got := item.Canonicalize(in)

	require.Equal(t, item.Itemset{
		{Attr: 1, Value: 0},
		{Attr: 2, Value: 1},
		{Attr: 3, Value: 1},
	}, got)
}

func TestCanonicalizeIsPermutationInvariant(t *testing.T) {
	a := item.Canonicalize([]item.Item{{Attr: 2, Value: 1}, {Attr: 0, Value: 0}})
	b := item.Canonicalize([]item.Item{{Attr: 0, Value: 0}, {Attr: 2, Value: 1}})
	require.True(t, a.Equal(b))
}

func TestPushDoesNotMutateReceiver(t *testing.T) {
	base := item.Canonicalize([]item.Item{{Attr: 1, Value: 1}})
	grown := base.Push(item.Item{Attr: 0, Value: 0})

	require.Len(t, base, 1)
	require.Len(t, grown, 2)
	require.Equal(t, 0, grown[0].Attr)
	require.Equal(t, 1, grown[1].Attr)
}

func TestStringIsDeterministic(t *testing.T) {
	set := item.Canonicalize([]item.Item{{Attr: 10, Value: 1}, {Attr: 2, Value: 0}})
	require.Equal(t, "(2=0),(10=1)", set.String())
}
