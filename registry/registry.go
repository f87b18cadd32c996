package registry

import (
	"context"

	"github.com/internetimagery/to/convert"
	"github.com/internetimagery/to/core"
)

// Registry owns every registered Edge and Revealer. It is append-only once
// built: AddConversion and AddRevealer are meant to run during an
// application's startup phase, after which Convert may be called
// repeatedly. Per spec.md §5, a Registry is not safe for concurrent use
// across goroutines — callers needing that must synchronize externally,
// the same "caller's responsibility" stance katalvlaran/lvlath takes on
// its own *core.Graph.
type Registry struct {
	cfg config

	edges     []core.Edge
	bySource  map[core.TypeKey][]core.EdgeID
	revealers map[core.TypeKey][]core.RevealFunc
}

// New builds an empty Registry.
func New(opts ...Option) *Registry {
	return &Registry{
		cfg:       newConfig(opts...),
		bySource:  map[core.TypeKey][]core.EdgeID{},
		revealers: map[core.TypeKey][]core.RevealFunc{},
	}
}

// AddConversion registers one Edge and returns its EdgeID. There is no
// deduplication: registering the same (source, target) pair more than once
// is permitted and creates parallel edges, exactly as spec.md §4.3
// specifies. Registration order is preserved in EdgeID, which doubles as
// the tie-break key search.Run uses among equal-cost paths.
func (r *Registry) AddConversion(cost uint, source core.TypeKey, requires core.VariationSet, target core.TypeKey, produces core.VariationSet, transmute core.Transmuter) (core.EdgeID, error) {
	if source == nil || target == nil {
		return 0, core.ErrNilTypeKey
	}
	if transmute == nil {
		return 0, core.ErrNilTransmute
	}

	id := core.EdgeID(len(r.edges))
	r.edges = append(r.edges, core.Edge{
		ID:        id,
		Cost:      cost,
		Source:    source,
		Target:    target,
		Requires:  requires,
		Produces:  produces,
		Transmute: transmute,
	})
	r.bySource[source] = append(r.bySource[source], id)
	return id, nil
}

// AddRevealer attaches a revealer to t. Multiple revealers may share a
// type; their contributions union at search time (search.revealEffective).
func (r *Registry) AddRevealer(t core.TypeKey, reveal core.RevealFunc) error {
	if t == nil {
		return core.ErrNilTypeKey
	}
	if reveal == nil {
		return core.ErrNilReveal
	}
	r.revealers[t] = append(r.revealers[t], reveal)
	return nil
}

// EdgesFrom implements search.Graph.
func (r *Registry) EdgesFrom(source core.TypeKey) []core.EdgeID { return r.bySource[source] }

// Edge implements search.Graph.
func (r *Registry) Edge(id core.EdgeID) core.Edge { return r.edges[id] }

// RevealersFor implements search.Graph.
func (r *Registry) RevealersFor(t core.TypeKey) []core.RevealFunc { return r.revealers[t] }

// Convert is the top-level entry point: plan a minimum-cost route from
// (have, haveVariations) to a node of type want carrying wantVariations,
// then execute it against value, rerouting around any Transmuter failure
// (see package convert). opts configures this single call only; it never
// mutates the Registry.
func (r *Registry) Convert(ctx context.Context, value any, want core.TypeKey, wantVariations core.VariationSet, have core.TypeKey, haveVariations core.VariationSet, opts ...convert.Option) (any, error) {
	execOpts := append([]convert.Option{
		convert.WithLogger(r.cfg.logger),
		convert.WithRecorder(r.cfg.recorder),
	}, opts...)
	if r.cfg.newCache != nil {
		// A fresh cache per call: memoized revealer output must never
		// survive past the Convert call it was computed for (see
		// WithRevealerCache and search.RevealerCache's doc comment).
		if cache := r.cfg.newCache(); cache != nil {
			execOpts = append(execOpts, convert.WithRevealerCache(cache))
		}
	}

	exec := convert.NewExecutor(r, execOpts...)
	return exec.Convert(ctx, value, have, haveVariations, want, wantVariations)
}
