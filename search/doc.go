// Package search implements the weighted, variation-aware, revealer-
// augmented shortest-path search over a directed multigraph of typed
// conversions (spec component C5).
//
// Run performs a best-first (Dijkstra-style) search from a start Node to
// any node satisfying a (TypeKey, VariationSet) goal predicate, returning
// the minimum-cost ordered sequence of Edges. It is adapted directly from
// katalvlaran/lvlath's dijkstra package: the same lazy-decrease-key
// min-heap over container/heap, generalized from a fixed destination
// vertex to a goal predicate, and from plain vertices to
// (TypeKey, VariationSet) nodes whose traversability also depends on
// revealers inspecting the value in flight.
//
// Complexity: O((N + E) log N) where N is the number of distinct nodes
// reached and E the number of edge relaxations attempted, mirroring
// dijkstra.Dijkstra's documented bound with "vertex" generalized to
// "node".
package search
