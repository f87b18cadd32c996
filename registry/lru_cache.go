package registry

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/internetimagery/to/core"
	"github.com/internetimagery/to/search"
)

// LRURevealerCache is a search.RevealerCache bounded to at most size
// distinct TypeKeys, backed by github.com/hashicorp/golang-lru/v2. It
// exists for registries whose single Convert call's search can visit far
// more distinct types than are worth memoizing unboundedly, the same
// concern open-policy-agent/opa wires the same library in for.
//
// A new LRURevealerCache must be built per Convert call (registry.
// WithRevealerCache does this) — like every RevealerCache, it is only
// sound for the lifetime of the value placeholder passed to one
// search.Run, never across calls with different inputs.
type LRURevealerCache struct {
	cache *lru.Cache[core.TypeKey, core.VariationSet]
}

// NewLRURevealerCache builds an LRURevealerCache holding at most size
// entries, evicting least-recently-used types once full.
func NewLRURevealerCache(size int) (*LRURevealerCache, error) {
	cache, err := lru.New[core.TypeKey, core.VariationSet](size)
	if err != nil {
		return nil, err
	}
	return &LRURevealerCache{cache: cache}, nil
}

// Get implements search.RevealerCache.
func (c *LRURevealerCache) Get(t core.TypeKey) (core.VariationSet, bool) {
	return c.cache.Get(t)
}

// Add implements search.RevealerCache.
func (c *LRURevealerCache) Add(t core.TypeKey, v core.VariationSet) {
	c.cache.Add(t, v)
}

var _ search.RevealerCache = (*LRURevealerCache)(nil)
