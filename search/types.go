package search

import (
	"github.com/internetimagery/to/core"
	"github.com/internetimagery/to/convmetrics"
	"github.com/internetimagery/to/obslog"
)

// RevealerCache memoizes a type's revealed VariationSet for the lifetime
// of a single Run call. Because the value placeholder passed to Run never
// changes during a search (edges are not executed while searching), every
// revealer invocation for a given type within one call observes the same
// value, so keying the cache by type alone — without also hashing the
// value — is sound, not just a heuristic.
type RevealerCache interface {
	Get(t core.TypeKey) (core.VariationSet, bool)
	Add(t core.TypeKey, v core.VariationSet)
}

// mapCache is the zero-configuration RevealerCache used when the caller
// does not wire in a sized one (see registry.WithRevealerCache).
type mapCache map[core.TypeKey]core.VariationSet

func (c mapCache) Get(t core.TypeKey) (core.VariationSet, bool) { v, ok := c[t]; return v, ok }
func (c mapCache) Add(t core.TypeKey, v core.VariationSet)      { c[t] = v }

// Option configures a single Run call.
type Option func(*config)

type config struct {
	logger         obslog.Logger
	recorder       convmetrics.Recorder
	cache          RevealerCache
	forbidZeroEdge bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   obslog.Noop,
		recorder: convmetrics.Noop,
		cache:    mapCache{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes Run's diagnostic trace through l instead of discarding it.
func WithLogger(l obslog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder reports search outcomes to r instead of discarding them.
func WithRecorder(r convmetrics.Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithRevealerCache installs a cache used to memoize revealer output for
// the duration of one Run call. Passing nil restores the default
// unbounded per-call map cache.
func WithRevealerCache(cache RevealerCache) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithForbidZeroEdge rejects a goal match at the very start node (a
// zero-edge result), forcing the search to traverse at least one edge even
// when the start node already satisfies the goal predicate. It implements
// the convert.WithExplicit() behavior described in spec.md §4.3/§9.
func WithForbidZeroEdge() Option {
	return func(c *config) { c.forbidZeroEdge = true }
}
