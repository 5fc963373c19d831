package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// bandwatch service.
type Metrics struct {
	WatcherRunning      prometheus.Gauge
	AdvisoriesPublished prometheus.Counter
	PollFailures        *prometheus.CounterVec // labels: stage={advise,publish}

	AdviseDuration  prometheus.Histogram
	PublishDuration prometheus.Histogram

	// Latest-advisory band counts.
	BandsByStatus *prometheus.GaugeVec // labels: status={ABSORBED,OPEN,NVIS,MARGINAL,CLOSED}

	// Conditions endpoint metrics.
	ConditionsRequests *prometheus.CounterVec // labels: outcome={ok,bad_request,no_data,upstream_error}
	ConditionsCache    *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		WatcherRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bandwatch",
			Name:      "watcher_running",
			Help:      "1 when the poll loop is active, 0 when shut down.",
		}),
		AdvisoriesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bandwatch",
			Name:      "advisories_published_total",
			Help:      "Total advisories written to the advisory topic.",
		}),
		PollFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bandwatch",
			Name:      "poll_failures_total",
			Help:      "Failed poll cycles by stage.",
		}, []string{"stage"}),
		AdviseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bandwatch",
			Name:      "advise_duration_seconds",
			Help:      "Duration of one window-fetch-select-classify cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bandwatch",
			Name:      "publish_duration_seconds",
			Help:      "Duration of one advisory publish to Kafka.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		BandsByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "bandwatch",
			Name:      "bands_by_status",
			Help:      "Bands in each status in the most recent advisory.",
		}, []string{"status"}),
		ConditionsRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bandwatch",
			Name:      "conditions_requests_total",
			Help:      "Conditions endpoint requests by outcome.",
		}, []string{"outcome"}),
		ConditionsCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bandwatch",
			Name:      "conditions_cache_total",
			Help:      "Conditions cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.WatcherRunning,
		m.AdvisoriesPublished,
		m.PollFailures,
		m.AdviseDuration,
		m.PublishDuration,
		m.BandsByStatus,
		m.ConditionsRequests,
		m.ConditionsCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics with fresh, unregistered collectors to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		WatcherRunning:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "bandwatch", Name: "watcher_running"}),
		AdvisoriesPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "bandwatch", Name: "advisories_published_total"}),
		PollFailures:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "bandwatch", Name: "poll_failures_total"}, []string{"stage"}),
		AdviseDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "bandwatch", Name: "advise_duration_seconds"}),
		PublishDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "bandwatch", Name: "publish_duration_seconds"}),
		BandsByStatus:       prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "bandwatch", Name: "bands_by_status"}, []string{"status"}),
		ConditionsRequests:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "bandwatch", Name: "conditions_requests_total"}, []string{"outcome"}),
		ConditionsCache:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "bandwatch", Name: "conditions_cache_total"}, []string{"result"}),
	}
}
