package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a map build.
type Metrics struct {
	RecordsRead     prometheus.Counter
	FeaturesLoaded  prometheus.Counter
	FeaturesSkipped prometheus.Counter
	ZonesRendered   prometheus.Gauge
	ZonesMissing    prometheus.Gauge // zones with records but no boundary
	LabelsUnaliased prometheus.Gauge
	RunDuration     prometheus.Histogram
	PipelineReady   prometheus.Gauge
	RenderedBytes   prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates all pipeline metrics and registers them
// with reg. One-shot tools pass a private prometheus.NewRegistry().
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.RecordsRead,
		m.FeaturesLoaded,
		m.FeaturesSkipped,
		m.ZonesRendered,
		m.ZonesMissing,
		m.LabelsUnaliased,
		m.RunDuration,
		m.PipelineReady,
		m.RenderedBytes,
	)
	return m
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zonemap",
			Name:      "records_read_total",
			Help:      "Total rows read from the tabular source.",
		}),
		FeaturesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zonemap",
			Name:      "features_loaded_total",
			Help:      "Total boundary features loaded as zones.",
		}),
		FeaturesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zonemap",
			Name:      "features_skipped_total",
			Help:      "Total boundary features skipped for malformed geometry.",
		}),
		ZonesRendered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zonemap",
			Name:      "zones_rendered",
			Help:      "Number of zone summaries produced by the last run.",
		}),
		ZonesMissing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zonemap",
			Name:      "zones_missing",
			Help:      "Canonical zones with records but no matching boundary in the last run.",
		}),
		LabelsUnaliased: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zonemap",
			Name:      "labels_unaliased",
			Help:      "Distinct record labels with no alias entry in the last run.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "zonemap",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-aggregate-join run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		PipelineReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zonemap",
			Name:      "pipeline_ready",
			Help:      "1 once a run has completed successfully, 0 otherwise.",
		}),
		RenderedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zonemap",
			Name:      "rendered_page_bytes",
			Help:      "Size of the rendered map page.",
		}),
	}
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
