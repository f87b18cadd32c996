package search

import (
	"container/heap"
	"context"

	"github.com/internetimagery/to/core"
)

// Run searches g for a minimum-cost sequence of edges carrying start to any
// node satisfying (want, wantVariations ⊆ node.Variations), using value as
// the placeholder revealers observe. excluded, if non-nil, lists edge IDs
// that must not be traversed (the convert package's reroute loop uses this
// to exclude edges that already failed in this call). ctx is checked once
// per frontier pop, so a caller can cancel an enormous frontier expansion
// without this call ever spawning a goroutine of its own.
//
// Run never executes an edge's Transmuter; the returned path is a plan for
// the caller (package convert) to carry out.
func Run(ctx context.Context, g Graph, start core.Node, value any, want core.TypeKey, wantVariations core.VariationSet, excluded map[core.EdgeID]bool, opts ...Option) ([]core.EdgeID, error) {
	cfg := newConfig(opts...)

	frontier := &frontierHeap{}
	heap.Init(frontier)
	heap.Push(frontier, &frontierItem{node: start, cost: 0, path: nil})

	startKey := start.Key()
	bestCost := map[any]uint64{}
	if !cfg.forbidZeroEdge {
		bestCost[startKey] = 0
	}
	closed := map[any]bool{}

	for frontier.Len() > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		item := heap.Pop(frontier).(*frontierItem)
		key := item.node.Key()
		if closed[key] {
			continue // stale heap entry for an already-finalized node
		}
		// The start node's own zero-edge pop is never settled when
		// WithForbidZeroEdge is set: closing it (or seeding bestCost above)
		// would permanently block a later, real edge path back to the same
		// (type, variations) key, which is exactly the path this option
		// exists to let through.
		unsettledStart := cfg.forbidZeroEdge && key == startKey && len(item.path) == 0
		if !unsettledStart {
			closed[key] = true
		}

		if (!cfg.forbidZeroEdge || len(item.path) > 0) &&
			item.node.Type == want && wantVariations.Subset(item.node.Variations) {
			cfg.logger.Debugw("search: goal reached", "type", item.node.Type, "cost", item.cost, "edges", len(item.path))
			cfg.recorder.ObserveSearch(true)
			return item.path, nil
		}

		effective := item.node.Variations
		if revealers := g.RevealersFor(item.node.Type); len(revealers) > 0 {
			effective = item.node.Variations.Union(revealEffective(cfg.cache, item.node.Type, revealers, value, cfg))
		}

		for _, eid := range g.EdgesFrom(item.node.Type) {
			if excluded != nil && excluded[eid] {
				continue
			}
			edge := g.Edge(eid)
			if !edge.Requires.Subset(effective) {
				continue
			}

			succ := core.Node{Type: edge.Target, Variations: item.node.Variations.Union(edge.Produces)}
			newCost := item.cost + uint64(edge.Cost)
			succKey := succ.Key()
			if closed[succKey] {
				continue
			}
			if best, ok := bestCost[succKey]; ok && newCost >= best {
				continue
			}
			bestCost[succKey] = newCost

			path := make([]core.EdgeID, len(item.path), len(item.path)+1)
			copy(path, item.path)
			path = append(path, eid)

			cfg.logger.Debugw("search: enqueue", "from", item.node.Type, "to", succ.Type, "edge", eid, "cost", newCost)
			heap.Push(frontier, &frontierItem{node: succ, cost: newCost, path: path})
		}
	}

	cfg.recorder.ObserveSearch(false)
	return nil, ErrNoPath
}

// revealEffective returns the union of every revealer's output for t,
// memoizing the result in cache for the remainder of this Run call.
func revealEffective(cache RevealerCache, t core.TypeKey, revealers []core.RevealFunc, value any, cfg config) core.VariationSet {
	if cached, ok := cache.Get(t); ok {
		return cached
	}
	var revealed core.VariationSet
	for _, reveal := range revealers {
		vs := safeReveal(reveal, value, cfg)
		revealed = revealed.Union(core.NewVariationSet(vs...))
	}
	cache.Add(t, revealed)
	return revealed
}

// safeReveal invokes reveal, absorbing both a returned error and a panic as
// an empty contribution, per spec.md §4.4/§7 ("A revealer that raises is
// treated as producing no additional variations; it does not abort the
// search").
func safeReveal(reveal core.RevealFunc, value any, cfg config) (out []core.Variation) {
	defer func() {
		if r := recover(); r != nil {
			cfg.logger.Warnw("search: revealer panicked", "recovered", r)
			out = nil
		}
	}()
	vs, err := reveal(value)
	if err != nil {
		cfg.logger.Warnw("search: revealer returned error", "error", err)
		return nil
	}
	return vs
}

// frontierItem is one entry in the search frontier: the accumulated cost
// and edge path required to reach node, carrying the original placeholder
// value along implicitly (Run passes the same value to every revealer
// invocation since edges are never executed during search).
type frontierItem struct {
	node core.Node
	cost uint64
	path []core.EdgeID
}

// frontierHeap is a min-heap ordered by (cost, path length, path edge IDs)
// ascending — cost first per spec.md's optimality requirement, then fewer
// edges, then registration order, exactly the tie-break spec.md §4.5/§9
// specifies. It mirrors dijkstra.go's nodePQ, generalized from a bare
// distance key to this three-level comparison.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if len(a.path) != len(b.path) {
		return len(a.path) < len(b.path)
	}
	for k := 0; k < len(a.path); k++ {
		if a.path[k] != b.path[k] {
			return a.path[k] < b.path[k]
		}
	}
	return false
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) { *h = append(*h, x.(*frontierItem)) }

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
