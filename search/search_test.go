package search_test

import (
	"context"
	"testing"

	"github.com/internetimagery/to/core"
	"github.com/internetimagery/to/search"
	"github.com/stretchr/testify/require"
)

// fakeGraph is a minimal in-memory search.Graph used to unit-test Run
// without pulling in the registry package, keeping search's tests
// independent of how a Graph happens to be implemented.
type fakeGraph struct {
	edges     []core.Edge
	bySource  map[core.TypeKey][]core.EdgeID
	revealers map[core.TypeKey][]core.RevealFunc
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		bySource:  map[core.TypeKey][]core.EdgeID{},
		revealers: map[core.TypeKey][]core.RevealFunc{},
	}
}

func (g *fakeGraph) add(cost uint, from core.TypeKey, requires core.VariationSet, to core.TypeKey, produces core.VariationSet) core.EdgeID {
	id := core.EdgeID(len(g.edges))
	g.edges = append(g.edges, core.Edge{
		ID: id, Cost: cost, Source: from, Target: to, Requires: requires, Produces: produces,
	})
	g.bySource[from] = append(g.bySource[from], id)
	return id
}

func (g *fakeGraph) addRevealer(t core.TypeKey, fn core.RevealFunc) {
	g.revealers[t] = append(g.revealers[t], fn)
}

func (g *fakeGraph) EdgesFrom(t core.TypeKey) []core.EdgeID      { return g.bySource[t] }
func (g *fakeGraph) Edge(id core.EdgeID) core.Edge               { return g.edges[id] }
func (g *fakeGraph) RevealersFor(t core.TypeKey) []core.RevealFunc { return g.revealers[t] }

func noVar() core.VariationSet { return core.NewVariationSet() }

func TestRun_LinearChoice(t *testing.T) {
	g := newFakeGraph()
	g.add(1, "A", noVar(), "B", noVar())
	g.add(1, "A", noVar(), "E", noVar())
	g.add(1, "B", noVar(), "C", noVar())
	g.add(1, "C", noVar(), "D", noVar())
	g.add(1, "E", noVar(), "F", noVar())
	g.add(1, "F", noVar(), "G", noVar())
	g.add(1, "G", noVar(), "D", noVar())

	path, err := search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "D", noVar(), nil)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{0, 2, 3}, path)
}

func TestRun_RevealerGatesEdge(t *testing.T) {
	// A->D (requiring the revealed "var") and A->B->C both cost 2. Per the
	// registration-order tie-break (see DESIGN.md), the earlier-registered
	// first edge wins: A->B->C.
	g := newFakeGraph()
	g.addRevealer("A", func(any) ([]core.Variation, error) { return []core.Variation{"var"}, nil })
	g.add(1, "A", noVar(), "B", noVar())
	g.add(1, "A", core.NewVariationSet("var"), "D", noVar())
	g.add(1, "B", noVar(), "C", noVar())
	g.add(1, "D", noVar(), "C", noVar())

	path, err := search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "C", noVar(), nil)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{0, 2}, path)
}

func TestRun_RevealerGatesEdge_OnlyPathRequiresVariation(t *testing.T) {
	// Unambiguous version of the above: B->C is removed, so the revealer-
	// gated A->D->C is the only path.
	g := newFakeGraph()
	g.addRevealer("A", func(any) ([]core.Variation, error) { return []core.Variation{"var"}, nil })
	g.add(1, "A", core.NewVariationSet("var"), "D", noVar())
	g.add(1, "D", noVar(), "C", noVar())

	path, err := search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "C", noVar(), nil)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{0, 1}, path)
}

func TestRun_MissingRequiredVariation(t *testing.T) {
	g := newFakeGraph()
	g.add(1, "E", core.NewVariationSet("var"), "F", noVar())

	_, err := search.Run(context.Background(), g, core.Node{Type: "E", Variations: noVar()}, "start", "F", noVar(), nil)
	require.ErrorIs(t, err, search.ErrNoPath)

	path, err := search.Run(context.Background(), g, core.Node{Type: "E", Variations: core.NewVariationSet("var")}, "start", "F", noVar(), nil)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{0}, path)
}

func TestRun_NoPath(t *testing.T) {
	g := newFakeGraph()
	g.add(1, "A", noVar(), "B", noVar())

	_, err := search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "D", noVar(), nil)
	require.ErrorIs(t, err, search.ErrNoPath)
}

func TestRun_ExcludedEdgeForcesReroute(t *testing.T) {
	g := newFakeGraph()
	g.add(3, "A", noVar(), "B", noVar())
	g.add(3, "B", noVar(), "C", noVar())
	bad := g.add(1, "A", noVar(), "D", noVar())
	g.add(1, "D", noVar(), "C", noVar())

	path, err := search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "C", noVar(), nil)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{bad, 3}, path)

	path, err = search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "C", noVar(),
		map[core.EdgeID]bool{bad: true})
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{0, 1}, path)
}

func TestRun_ForbidZeroEdge(t *testing.T) {
	g := newFakeGraph()
	g.add(1, "A", noVar(), "B", noVar())
	g.add(1, "B", noVar(), "A", noVar())

	path, err := search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "A", noVar(), nil)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID(nil), path)

	path, err = search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "A", noVar(), nil,
		search.WithForbidZeroEdge())
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{0, 1}, path)
}

func TestRun_VariationAccumulationRoundTrip(t *testing.T) {
	g := newFakeGraph()
	g.add(1, "A", noVar(), "B", noVar())
	g.add(1, "B", noVar(), "A", noVar())
	g.add(1, "B", noVar(), "C", noVar())
	g.add(1, "C", noVar(), "B", core.NewVariationSet("var"))

	path, err := search.Run(context.Background(), g, core.Node{Type: "A", Variations: noVar()}, "start", "A", core.NewVariationSet("var"), nil)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{0, 2, 3, 1}, path)
}

func TestRun_ContextCanceledStopsFrontierExpansion(t *testing.T) {
	// A canceled context must be honored at the very next frontier pop, even
	// mid-search, so a caller can bound an otherwise enormous expansion.
	g := newFakeGraph()
	g.add(1, "A", noVar(), "B", noVar())
	g.add(1, "B", noVar(), "C", noVar())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(ctx, g, core.Node{Type: "A", Variations: noVar()}, "start", "C", noVar(), nil)
	require.ErrorIs(t, err, context.Canceled)
}
