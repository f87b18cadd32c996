package convert

import (
	"github.com/internetimagery/to/convmetrics"
	"github.com/internetimagery/to/obslog"
	"github.com/internetimagery/to/search"
)

// Option configures an Executor.
type Option func(*config)

type config struct {
	logger       obslog.Logger
	recorder     convmetrics.Recorder
	explicit     bool
	revealerOpts []search.Option
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

// WithLogger routes the executor's diagnostic trace through l.
func WithLogger(l obslog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder reports conversion and reroute outcomes to r.
func WithRecorder(r convmetrics.Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithExplicit forbids a zero-edge result: Convert must traverse at least
// one real edge even when the start node already satisfies the goal, per
// spec.md §4.3/§9. Without it, requesting a type/variation combination the
// input already has is a no-op success.
func WithExplicit() Option {
	return func(c *config) { c.explicit = true }
}

// WithRevealerCache installs a RevealerCache shared across every search
// this Executor performs, including reroute re-searches within one Convert
// call.
func WithRevealerCache(cache search.RevealerCache) Option {
	return func(c *config) {
		if cache != nil {
			c.revealerOpts = append(c.revealerOpts, search.WithRevealerCache(cache))
		}
	}
}
