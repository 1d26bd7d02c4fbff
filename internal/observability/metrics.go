package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a site build.
type Metrics struct {
	SourcesLoaded    prometheus.Counter
	EventsIngested   prometheus.Counter
	EventsExpired    prometheus.Counter
	EventsPublished  prometheus.Gauge
	BuildsCompleted  prometheus.Counter
	LastBuildSuccess prometheus.Gauge

	BuildDuration prometheus.Histogram

	ArtifactsWritten *prometheus.CounterVec // labels: format={html,txt,ical,md,static}
	PartitionEvents  *prometheus.GaugeVec   // labels: label={all,rust,rust-english,...}
	BuildFailures    *prometheus.CounterVec // labels: stage={load,decode,render,write,...}
}

// NewMetrics creates and registers all build metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.SourcesLoaded,
		m.EventsIngested,
		m.EventsExpired,
		m.EventsPublished,
		m.BuildsCompleted,
		m.LastBuildSuccess,
		m.BuildDuration,
		m.ArtifactsWritten,
		m.PartitionEvents,
		m.BuildFailures,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SourcesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "virtual_events",
			Name:      "sources_loaded_total",
			Help:      "Source documents read and validated.",
		}),
		EventsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "virtual_events",
			Name:      "events_ingested_total",
			Help:      "Event records accepted from source documents.",
		}),
		EventsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "virtual_events",
			Name:      "events_expired_total",
			Help:      "Event records dropped because they started before the build.",
		}),
		EventsPublished: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "virtual_events",
			Name:      "events_published",
			Help:      "Upcoming events in the last completed build.",
		}),
		BuildsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "virtual_events",
			Name:      "builds_completed_total",
			Help:      "Builds that rendered every artifact.",
		}),
		LastBuildSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "virtual_events",
			Name:      "last_build_success_timestamp_seconds",
			Help:      "Unix time of the reference instant of the last completed build.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "virtual_events",
			Name:      "build_duration_seconds",
			Help:      "Duration of a complete build.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		ArtifactsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "virtual_events",
			Name:      "artifacts_written_total",
			Help:      "Files written to the output root by format.",
		}, []string{"format"}),
		PartitionEvents: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "virtual_events",
			Name:      "partition_events",
			Help:      "Events per partition label in the last build.",
		}, []string{"label"}),
		BuildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "virtual_events",
			Name:      "build_failures_total",
			Help:      "Aborted builds by the stage that failed.",
		}, []string{"stage"}),
	}
}
