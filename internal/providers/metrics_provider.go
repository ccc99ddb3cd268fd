package providers

import (
	"io"
	"solobill/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

type MetricsProviderInterface interface {
	IncOperation(entity, op string)
	IncFailure(entity, op string)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	SetRecordsTotal(collection string, count int)
	Dump(w io.Writer) error
}

// MetricsProvider registers on a private registry; there is no HTTP listener,
// the registry is gathered on demand by the metrics command.
type MetricsProvider struct {
	registry            *prometheus.Registry
	operationsTotal     *prometheus.CounterVec
	failuresTotal       *prometheus.CounterVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	recordsTotal        *prometheus.GaugeVec
}

func (m *MetricsProvider) IncOperation(entity, op string) {
	m.operationsTotal.WithLabelValues(entity, op).Inc()
}

func (m *MetricsProvider) IncFailure(entity, op string) {
	m.failuresTotal.WithLabelValues(entity, op).Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetRecordsTotal(collection string, count int) {
	m.recordsTotal.WithLabelValues(collection).Set(float64(count))
}

func (m *MetricsProvider) Dump(w io.Writer) error {
	mfs, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &MetricsProvider{
		registry: registry,

		operationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "solobill_operations_total",
			Help: "Total number of completed store operations",
		}, []string{"entity", "op"}),

		failuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "solobill_operation_failures_total",
			Help: "Total number of rejected store operations",
		}, []string{"entity", "op"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "solobill_cache_hits_total",
			Help: "Total number of view cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "solobill_cache_misses_total",
			Help: "Total number of view cache misses",
		}),

		persistenceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "solobill_persistence_duration_seconds",
			Help:    "Duration of persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		recordsTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solobill_records_total",
			Help: "Number of records per collection",
		}, []string{"collection"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncOperation(_, _ string)                   {}
func (n *noopMetrics) IncFailure(_, _ string)                     {}
func (n *noopMetrics) IncCacheHits()                              {}
func (n *noopMetrics) IncCacheMisses()                            {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration) {}
func (n *noopMetrics) SetRecordsTotal(_ string, _ int)            {}
func (n *noopMetrics) Dump(_ io.Writer) error                     { return nil }
