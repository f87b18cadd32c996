package core

import (
	"sort"
	"strings"
)

// Variation is an opaque tag attached to a Node expressing a contextual
// property such as "validated" or "normalized". The engine never inspects
// its contents beyond equality.
type Variation string

// VariationSet is an unordered, duplicate-collapsing collection of
// Variations with set-equality and subset semantics. The zero value is the
// empty set and is ready to use.
//
// Internally the tags are kept sorted and de-duplicated so that two
// VariationSets built from the same tags in different orders, or with
// repeated tags, compare and hash identically — this is what lets Node be
// used as a deterministic visited-set key in search.
type VariationSet struct {
	tags []Variation // sorted, de-duplicated; nil means empty
}

// NewVariationSet builds a VariationSet from zero or more tags, collapsing
// duplicates and canonicalizing order.
func NewVariationSet(tags ...Variation) VariationSet {
	if len(tags) == 0 {
		return VariationSet{}
	}
	cp := make([]Variation, len(tags))
	copy(cp, tags)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	var prev Variation
	var have bool
	for _, t := range cp {
		if have && t == prev {
			continue
		}
		out = append(out, t)
		prev = t
		have = true
	}
	return VariationSet{tags: out}
}

// Len reports the number of distinct tags in the set.
func (s VariationSet) Len() int { return len(s.tags) }

// Contains reports whether v is a member of the set.
func (s VariationSet) Contains(v Variation) bool {
	i := sort.Search(len(s.tags), func(i int) bool { return s.tags[i] >= v })
	return i < len(s.tags) && s.tags[i] == v
}

// Subset reports whether every tag in s is also present in other, i.e.
// s ⊆ other. The empty set is a subset of every set, including itself.
func (s VariationSet) Subset(other VariationSet) bool {
	for _, t := range s.tags {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same tags.
func (s VariationSet) Equal(other VariationSet) bool {
	return s.Len() == other.Len() && s.Subset(other)
}

// Union returns a new VariationSet containing every tag present in s or
// other. Neither input is mutated.
func (s VariationSet) Union(other VariationSet) VariationSet {
	if s.Len() == 0 {
		return other
	}
	if other.Len() == 0 {
		return s
	}
	merged := make([]Variation, 0, s.Len()+other.Len())
	merged = append(merged, s.tags...)
	merged = append(merged, other.tags...)
	return NewVariationSet(merged...)
}

// Slice returns the tags in canonical (sorted) order. The returned slice
// must not be mutated by the caller.
func (s VariationSet) Slice() []Variation { return s.tags }

// key returns a canonical string encoding of the set, suitable for use as
// part of a map key. Two equal sets always produce the same key.
func (s VariationSet) key() string {
	if len(s.tags) == 0 {
		return ""
	}
	strs := make([]string, len(s.tags))
	for i, t := range s.tags {
		strs[i] = string(t)
	}
	return strings.Join(strs, "\x00")
}
