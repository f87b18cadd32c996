// Package convmetrics defines the optional instrumentation surface for the
// routing engine: counts of conversions performed and reroutes taken, and
// the cost of the path ultimately selected. A Recorder is injected via
// registry.WithRecorder; the default is a no-op.
package convmetrics

// Recorder observes the outcome of path searches and conversions. All
// methods must be safe to call from a single goroutine per Registry, per
// the engine's single-threaded-per-call concurrency model; Recorder
// implementations that need cross-call thread-safety (such as the
// Prometheus one) provide their own synchronization.
type Recorder interface {
	// ObserveSearch records that a search ran and whether it found a path.
	ObserveSearch(found bool)
	// ObserveReroute records one reroute-on-failure attempt.
	ObserveReroute()
	// ObserveConvert records a completed Convert call, including the total
	// cost of the path that was ultimately executed.
	ObserveConvert(pathCost uint, edges int)
}

// Noop is a Recorder that discards every observation.
var Noop Recorder = noopRecorder{}

type noopRecorder struct{}

func (noopRecorder) ObserveSearch(bool)          {}
func (noopRecorder) ObserveReroute()             {}
func (noopRecorder) ObserveConvert(uint, int) {}
