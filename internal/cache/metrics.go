package cache

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the optional Prometheus instrumentation for a Cache. It
// is nil-safe throughout: a nil *Metrics (the default) makes every
// recording method a no-op, so unit tests that never call NewMetrics
// never touch the default Prometheus registry.
type Metrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
	diskErrs  prometheus.Counter
	residentB *prometheus.GaugeVec
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// NewMetrics registers the cache's Prometheus collectors exactly once
// per process (subsequent calls return the same instance), mirroring
// the sync.Once singleton guard in
// internal/classification/repository/classification_metrics.go.
func NewMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = &Metrics{
			hits: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "contentcache_hits_total",
				Help: "Cache hits by tier and kind.",
			}, []string{"tier", "kind"}),
			misses: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "contentcache_misses_total",
				Help: "Cache misses by tier and kind.",
			}, []string{"tier", "kind"}),
			evictions: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "contentcache_evictions_total",
				Help: "Memory-tier evictions by kind.",
			}, []string{"kind"}),
			diskErrs: promauto.NewCounter(prometheus.CounterOpts{
				Name: "contentcache_disk_errors_total",
				Help: "IO failures observed by the disk tier.",
			}),
			residentB: promauto.NewGaugeVec(prometheus.GaugeOpts{
				Name: "contentcache_resident_bytes",
				Help: "Bytes currently tracked by a memory tier.",
			}, []string{"kind"}),
		}
	})
	return defaultMetrics
}

func (m *Metrics) recordHit(tier, kind string) {
	if m == nil {
		return
	}
	m.hits.WithLabelValues(tier, kind).Inc()
}

func (m *Metrics) recordMiss(tier, kind string) {
	if m == nil {
		return
	}
	m.misses.WithLabelValues(tier, kind).Inc()
}

func (m *Metrics) recordEviction(kind string) {
	if m == nil {
		return
	}
	m.evictions.WithLabelValues(kind).Inc()
}

func (m *Metrics) recordDiskError() {
	if m == nil {
		return
	}
	m.diskErrs.Inc()
}

func (m *Metrics) setResidentBytes(kind string, n int64) {
	if m == nil {
		return
	}
	m.residentB.WithLabelValues(kind).Set(float64(n))
}
