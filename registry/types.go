package registry

import (
	"github.com/internetimagery/to/convmetrics"
	"github.com/internetimagery/to/obslog"
	"github.com/internetimagery/to/search"
)

// Option configures a Registry at construction time.
type Option func(*config)

type config struct {
	logger   obslog.Logger
	recorder convmetrics.Recorder
	newCache func() search.RevealerCache
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   obslog.Noop,
		recorder: convmetrics.Noop,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes the Registry's search/execution trace through l.
func WithLogger(l obslog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder reports search, reroute, and conversion outcomes to r.
func WithRecorder(r convmetrics.Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithRevealerCache bounds the per-call revealer memoization cache to at
// most size distinct TypeKeys, backed by an LRURevealerCache instead of the
// default unbounded map. Per spec.md §9 this memoization is an optional
// quality-of-implementation choice scoped to the lifetime of a single
// Convert call, never across calls: a fresh LRURevealerCache is built for
// every Convert (see Registry.Convert), since the soundness of memoizing
// by TypeKey alone (RevealerCache's own doc comment) depends on the value
// placeholder being fixed for the duration of one search — which is only
// true within a single call, not across two calls with different inputs.
func WithRevealerCache(size int) Option {
	return func(c *config) {
		c.newCache = func() search.RevealerCache {
			cache, err := NewLRURevealerCache(size)
			if err != nil {
				// An invalid size (<=0) falls back to the zero-configuration
				// unbounded map cache rather than silently disabling
				// memoization outright.
				return nil
			}
			return cache
		}
	}
}
