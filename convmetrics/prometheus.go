package convmetrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus is a Recorder backed by github.com/prometheus/client_golang,
// grounded in the same counter/histogram shape dshills/langgraph-go and
// docker/go-metrics use for their own request/operation instrumentation.
type Prometheus struct {
	searches     *prometheus.CounterVec
	reroutes     prometheus.Counter
	conversions  prometheus.Counter
	pathCost     prometheus.Histogram
	pathEdges    prometheus.Histogram
}

// NewPrometheus registers a fresh set of collectors on reg and returns a
// Recorder backed by them. Passing a nil reg uses prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "to",
			Subsystem: "search",
			Name:      "total",
			Help:      "Path searches performed, labeled by whether a path was found.",
		}, []string{"found"}),
		reroutes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "to",
			Subsystem: "convert",
			Name:      "reroutes_total",
			Help:      "Reroutes performed after a converter failure.",
		}),
		conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "to",
			Subsystem: "convert",
			Name:      "total",
			Help:      "Conversions completed successfully.",
		}),
		pathCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "to",
			Subsystem: "convert",
			Name:      "path_cost",
			Help:      "Total cost of the path executed by a completed conversion.",
			Buckets:   prometheus.LinearBuckets(0, 2, 10),
		}),
		pathEdges: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "to",
			Subsystem: "convert",
			Name:      "path_edges",
			Help:      "Number of edges in the path executed by a completed conversion.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
	}
	reg.MustRegister(p.searches, p.reroutes, p.conversions, p.pathCost, p.pathEdges)
	return p
}

func (p *Prometheus) ObserveSearch(found bool) {
	label := "true"
	if !found {
		label = "false"
	}
	p.searches.WithLabelValues(label).Inc()
}

func (p *Prometheus) ObserveReroute() { p.reroutes.Inc() }

func (p *Prometheus) ObserveConvert(pathCost uint, edges int) {
	p.conversions.Inc()
	p.pathCost.Observe(float64(pathCost))
	p.pathEdges.Observe(float64(edges))
}
