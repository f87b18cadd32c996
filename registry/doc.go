// Package registry builds and holds the conversion graph: the set of
// registered edges (conversions) and revealers (variation detectors) that
// package search plans routes over and package convert executes.
//
// A Registry is the thing an application builds once at startup (calling
// AddConversion and AddRevealer repeatedly) and then calls Convert against
// many times. It implements search.Graph directly, so search never needs
// to know a Registry exists — the dependency only runs one way, the same
// way katalvlaran/lvlath's dijkstra package depends on core without core
// (or any higher-level graph builder) depending back on dijkstra.
package registry
