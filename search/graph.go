package search

import "github.com/internetimagery/to/core"

// Graph is the read-only view of a conversion registry that Run needs: the
// edges leaving a given type, a specific edge by ID, and the revealers
// attached to a type. *registry.Registry implements this interface; search
// never imports registry, which keeps the dependency direction one-way
// (registry depends on search, not the reverse) the same way
// katalvlaran/lvlath's dijkstra package only depends on core, never on a
// higher-level package that happens to use it.
type Graph interface {
	// EdgesFrom returns the IDs of every edge registered with the given
	// type as its source, in registration order.
	EdgesFrom(source core.TypeKey) []core.EdgeID
	// Edge returns the edge registered under id.
	Edge(id core.EdgeID) core.Edge
	// RevealersFor returns every RevealFunc registered for the given type.
	RevealersFor(t core.TypeKey) []core.RevealFunc
}
