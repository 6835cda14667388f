package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Verdicts by status and request source
	Outcome *prometheus.CounterVec

	// Registry lookup latencies by registry name
	LookupLatency *prometheus.HistogramVec

	// Overall verification latency
	VerifyLatency prometheus.Histogram

	// Cache effectiveness
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates a Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "truadboon_verification_outcomes_total",
			Help: "Total verification verdicts by status and source",
		}, []string{"status", "source"}),

		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "truadboon_verification_lookup_duration_seconds",
			Help:    "Duration of registry lookups by registry",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"registry"}), // registry: "foundation", "blacklist"

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "truadboon_verification_duration_seconds",
			Help:    "Duration of full verification including registry lookups",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "truadboon_verification_cache_hits_total",
			Help: "Verdicts served from the cache",
		}),

		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "truadboon_verification_cache_misses_total",
			Help: "Verdicts resolved against the registries",
		}),
	}
}

// ObserveLookupLatency records the duration of one registry lookup.
func (m *Metrics) ObserveLookupLatency(registry string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(registry).Observe(d.Seconds())
	}
}

// IncrementOutcome records a verdict.
func (m *Metrics) IncrementOutcome(status, source string) {
	if m != nil {
		m.Outcome.WithLabelValues(status, source).Inc()
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}

// IncrementCache records a cache hit or miss.
func (m *Metrics) IncrementCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
	} else {
		m.CacheMisses.Inc()
	}
}
