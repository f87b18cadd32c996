package convert

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/internetimagery/to/convmetrics"
	"github.com/internetimagery/to/core"
	"github.com/internetimagery/to/obslog"
	"github.com/internetimagery/to/search"
)

// Executor runs conversions over a search.Graph, replanning around edges
// whose Transmuter fails until it either lands on a value satisfying the
// goal or exhausts every alternative.
type Executor struct {
	graph      search.Graph
	logger     obslog.Logger
	recorder   convmetrics.Recorder
	searchOpts []search.Option
}

// NewExecutor builds an Executor over g. g is typically a *registry.Registry.
func NewExecutor(g search.Graph, opts ...Option) *Executor {
	cfg := newConfig(opts...)

	searchOpts := append([]search.Option{
		search.WithLogger(cfg.logger),
		search.WithRecorder(cfg.recorder),
	}, cfg.revealerOpts...)
	if cfg.explicit {
		searchOpts = append(searchOpts, search.WithForbidZeroEdge())
	}

	return &Executor{
		graph:      g,
		logger:     cfg.logger,
		recorder:   cfg.recorder,
		searchOpts: searchOpts,
	}
}

// Convert carries value from (have, haveVariations) to a value of type want
// satisfying wantVariations, executing each planned edge's Transmuter in
// turn. On a Transmuter failure, the failed edge is excluded and the
// remaining route is replanned from the current node; this repeats until a
// full path succeeds or no replan exists, at which point Convert returns a
// *ConversionError. A *NoPathError is returned immediately if no path
// exists at all, before any Transmuter runs.
func (e *Executor) Convert(ctx context.Context, value any, have core.TypeKey, haveVariations core.VariationSet, want core.TypeKey, wantVariations core.VariationSet) (any, error) {
	start := core.Node{Type: have, Variations: haveVariations}
	excluded := map[core.EdgeID]bool{}

	path, err := search.Run(ctx, e.graph, start, value, want, wantVariations, excluded, e.searchOpts...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &NoPathError{Start: start, Want: want, WantVariations: wantVariations}
	}

	current := start
	currentValue := value
	var traveled []core.EdgeID
	var totalCost uint

	for len(path) > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		eid := path[0]
		edge := e.graph.Edge(eid)

		out, txErr := safeTransmute(edge, currentValue)
		if txErr != nil {
			excluded[eid] = true
			e.recorder.ObserveReroute()
			e.logger.Warnw("convert: edge failed, rerouting", "edge", eid, "error", txErr)

			reroute, rerouteErr := search.Run(ctx, e.graph, current, currentValue, want, wantVariations, excluded, e.searchOpts...)
			if rerouteErr != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				return nil, &ConversionError{
					Edge:    edge,
					Cause:   pkgerrors.Wrapf(txErr, "transmute %v -> %v", edge.Source, edge.Target),
					Partial: traveled,
				}
			}
			path = reroute
			continue
		}

		e.logger.Debugw("convert: edge traversed", "edge", eid, "from", edge.Source, "to", edge.Target)
		currentValue = out
		current = core.Node{Type: edge.Target, Variations: current.Variations.Union(edge.Produces)}
		traveled = append(traveled, eid)
		totalCost += edge.Cost
		path = path[1:]
	}

	e.recorder.ObserveConvert(totalCost, len(traveled))
	return currentValue, nil
}

// safeTransmute invokes edge's Transmuter, converting a panic into an
// error the reroute loop can treat the same as a returned failure — a
// broken converter must never abort the whole Convert call, it should
// simply be routed around.
func safeTransmute(edge core.Edge, value any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = pkgerrors.Errorf("transmuter panicked: %v", r)
		}
	}()
	return edge.Transmute.Transmute(value)
}
