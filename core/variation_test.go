package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/internetimagery/to/core"
)

func TestVariationSet_Canonicalization(t *testing.T) {
	a := core.NewVariationSet("b", "a", "a", "c")
	b := core.NewVariationSet("c", "b", "a")

	require.True(t, a.Equal(b))
	require.Equal(t, 3, a.Len())
	// Deep comparison of the canonicalized tag slices: both sets must
	// collapse duplicates and sort identically regardless of input order.
	if diff := cmp.Diff(a.Slice(), b.Slice()); diff != "" {
		t.Errorf("canonicalized tags differ (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff([]core.Variation{"a", "b", "c"}, a.Slice()); diff != "" {
		t.Errorf("canonicalized tags mismatch (-want +got):\n%s", diff)
	}
}

func TestVariationSet_Subset(t *testing.T) {
	empty := core.NewVariationSet()
	full := core.NewVariationSet("var1", "var2")

	require.True(t, empty.Subset(full))
	require.True(t, empty.Subset(empty))
	require.False(t, full.Subset(empty))
	require.True(t, core.NewVariationSet("var1").Subset(full))
}

func TestVariationSet_Union(t *testing.T) {
	a := core.NewVariationSet("var1")
	b := core.NewVariationSet("var2")

	union := a.Union(b)
	require.True(t, union.Contains("var1"))
	require.True(t, union.Contains("var2"))
	require.Equal(t, 2, union.Len())

	require.True(t, a.Union(core.VariationSet{}).Equal(a))
}

func TestNode_Equal(t *testing.T) {
	n1 := core.Node{Type: "A", Variations: core.NewVariationSet("x")}
	n2 := core.Node{Type: "A", Variations: core.NewVariationSet("x")}
	n3 := core.Node{Type: "A", Variations: core.NewVariationSet("y")}

	require.True(t, n1.Equal(n2))
	require.False(t, n1.Equal(n3))
}
