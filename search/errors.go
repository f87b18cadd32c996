package search

import "errors"

// ErrNoPath is returned when the frontier empties without a goal dequeue.
// Callers that need start/goal context (package convert) wrap this
// sentinel with that context, the same way dijkstra.go wraps
// dijkstra.ErrNegativeWeight with the offending edge before returning it.
var ErrNoPath = errors.New("search: no path to a goal-satisfying node")
