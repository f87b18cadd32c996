package convert

import (
	"fmt"

	"github.com/internetimagery/to/core"
	"github.com/internetimagery/to/search"
)

// NoPathError reports that no sequence of conversions reaches a node of
// type Want carrying at least WantVariations, starting from Start. It is
// returned only when the initial search finds no path, before any
// Transmuter runs; once a Transmuter has failed and no reroute exists, the
// failure is reported as a ConversionError instead.
type NoPathError struct {
	Start          core.Node
	Want           core.TypeKey
	WantVariations core.VariationSet
}

func (e *NoPathError) Error() string {
	return fmt.Sprintf("convert: no path from %v%v to %v requiring %v",
		e.Start.Type, e.Start.Variations.Slice(), e.Want, e.WantVariations.Slice())
}

// Unwrap exposes search.ErrNoPath so callers can use errors.Is(err,
// search.ErrNoPath) without depending on this struct's shape.
func (e *NoPathError) Unwrap() error { return search.ErrNoPath }

// ConversionError reports that a specific edge's Transmuter failed and no
// alternative route existed from that point. Partial holds the edges
// already successfully traveled before the failure, for callers that want
// to inspect how far the conversion got.
type ConversionError struct {
	Edge    core.Edge
	Cause   error
	Partial []core.EdgeID
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert: edge %d (%v -> %v) failed after %d prior step(s): %v",
		e.Edge.ID, e.Edge.Source, e.Edge.Target, len(e.Partial), e.Cause)
}

// Unwrap exposes the underlying transmuter failure.
func (e *ConversionError) Unwrap() error { return e.Cause }
