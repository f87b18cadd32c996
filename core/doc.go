// Package core defines the data model shared by the registry, search, and
// convert packages: TypeKey identity, VariationSet set semantics, the
// (TypeKey, VariationSet) Node pair, and the Edge/Revealer records that a
// registry stores and a search walks.
//
// Nothing in core performs a search or executes a conversion; it only
// describes the shapes those operations work over, the same way
// katalvlaran/lvlath's core package describes Vertex/Edge/Graph without
// itself implementing BFS, DFS, or Dijkstra.
package core
