// Package convert executes a conversion plan produced by package search
// against a concrete value, and implements the reroute-on-failure behavior
// spec.md §4.6/§7 requires: when a Transmuter fails partway through a
// planned path, the remaining edges of that plan are discarded and a fresh
// search runs from the current node, excluding the edge that just failed,
// splicing the new path in where the old one broke off. Only once every
// alternative is exhausted does a call fail outright.
//
// search itself never executes a Transmuter or reports on conversion
// success; this package is the only one that does, which keeps planning
// (search) and execution (convert) independently testable, the same
// separation katalvlaran/lvlath draws between computing a Dijkstra
// distance/predecessor map and whatever the caller does with it.
package convert
