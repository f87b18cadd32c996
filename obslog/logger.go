// Package obslog defines the minimal structured-logging surface that
// search and convert log through. Callers wire in a real backend (see
// NewZap); by default everything logs to a no-op, matching the teacher's
// own preference for optional, pluggable hooks (e.g.
// katalvlaran/lvlath's algorithms.BFSOptions.OnVisit) over a mandatory
// dependency.
package obslog

// Logger is the structured-logging surface used by the engine. Keys in the
// variadic fields are expected in "key", value, "key", value pairs, the
// same convention go.uber.org/zap's SugaredLogger uses.
type Logger interface {
	Debugw(msg string, fields ...any)
	Warnw(msg string, fields ...any)
}

// Noop is a Logger that discards everything. It is the default used
// whenever a caller does not wire in a real backend.
var Noop Logger = noopLogger{}

type noopLogger struct{}

func (noopLogger) Debugw(string, ...any) {}
func (noopLogger) Warnw(string, ...any)  {}
