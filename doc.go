// Package to is a routing engine for converting values between typed,
// variation-qualified representations.
//
// A caller registers conversions (source type -> target type, with a cost
// and the variations it requires/produces) and revealers (functions that
// inspect a value and report which variations it already satisfies) on a
// registry.Registry, then calls Registry.Convert to carry a value from one
// type/variation combination to another. Convert searches the registered
// conversions for a minimum-cost route, reveals variations lazily as the
// search visits each type, and reroutes around any conversion that fails
// at execution time.
//
// The engine itself lives under four subpackages:
//
//	core/       — the shared data model: TypeKey, VariationSet, Node, Edge, Revealer
//	search/     — best-first route planning over a registered conversion graph
//	convert/    — plan execution, with reroute-on-failure
//	registry/   — the Registry a caller actually builds and calls Convert on
//
// obslog/ and convmetrics/ are optional, pluggable logging and metrics
// surfaces threaded through search and convert; both default to no-ops.
package to
