package core

import "errors"

// Sentinel errors for malformed registrations. These are distinct from the
// search/execution-time errors in package convert (NoPathError,
// ConversionError): they report programmer mistakes made while building a
// Registry, not runtime routing failures.
var (
	// ErrNilTypeKey indicates a TypeKey of nil was supplied where a concrete,
	// comparable type identity was required.
	ErrNilTypeKey = errors.New("core: type key is nil")

	// ErrNilTransmute indicates a conversion was registered without a
	// callable to perform the transmutation.
	ErrNilTransmute = errors.New("core: transmute function is nil")

	// ErrNilReveal indicates a revealer was registered without a callable.
	ErrNilReveal = errors.New("core: reveal function is nil")
)

// TypeKey is an opaque, hashable, equality-comparable handle identifying a
// domain type. The engine never inspects a TypeKey's contents; it only
// compares keys with == and uses them as map indices. Callers supply their
// own concrete, comparable type (a string, an integer enum, a pointer, or a
// small struct) as the underlying value.
type TypeKey = any

// Node is the search's vertex identity: a type paired with the set of
// variations the value at that point in a conversion chain is known to
// satisfy. Two nodes are equal iff their TypeKeys are == and their
// VariationSets contain the same tags.
type Node struct {
	Type       TypeKey
	Variations VariationSet
}

// Equal reports whether n and other denote the same node.
func (n Node) Equal(other Node) bool {
	return n.Type == other.Type && n.Variations.Equal(other.Variations)
}

// key returns a value usable as a map key uniquely identifying the node,
// since VariationSet itself is not comparable (it holds a slice).
func (n Node) key() nodeKey { return nodeKey{typ: n.Type, vkey: n.Variations.key()} }

type nodeKey struct {
	typ  TypeKey
	vkey string
}

// Key exposes Node's internal map-key form for packages (search) that need
// to index nodes in a visited set without duplicating the canonicalization
// logic.
func (n Node) Key() any { return n.key() }

// EdgeID indexes a registered Edge inside a Registry's arena. IDs are
// assigned in registration order starting at 0, which doubles as the
// registration-order tie-break spec.md calls for in path selection.
type EdgeID int

// Transmuter converts one value into another, or reports that it could
// not. Implementations may be pure or side-effecting; the engine treats
// them as synchronous, opaque, single-argument callables.
type Transmuter interface {
	Transmute(value any) (any, error)
}

// TransmuterFunc adapts a plain function to the Transmuter interface.
type TransmuterFunc func(value any) (any, error)

// Transmute calls f(value).
func (f TransmuterFunc) Transmute(value any) (any, error) { return f(value) }

// RevealFunc inspects a concrete value and reports zero or more variations
// it satisfies. A RevealFunc that returns an error is treated by the search
// as having contributed no variations; it never aborts the search.
type RevealFunc func(value any) ([]Variation, error)

// Revealer pairs a TypeKey with the RevealFunc invoked when the search
// first dequeues a node of that type.
type Revealer struct {
	Type   TypeKey
	Reveal RevealFunc
}

// Edge is a single registered conversion: its cost, its endpoint types, the
// variations it requires to be traversable and produces once traversed, and
// the opaque callable that performs the value transformation. Edges are
// immutable after registration; a Registry may hold several Edges with
// identical endpoints.
type Edge struct {
	ID        EdgeID
	Cost      uint
	Source    TypeKey
	Target    TypeKey
	Requires  VariationSet
	Produces  VariationSet
	Transmute Transmuter
}
