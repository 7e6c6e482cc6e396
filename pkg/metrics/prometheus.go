package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	cacheSymbols  prometheus.Gauge
	screened      *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
}

// New registers the collectors on the default registry. Call it once per
// process.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetches: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscreen_fetches_total",
				Help: "Provider calls by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
		fetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finscreen_fetch_duration_seconds",
				Help:    "Provider call latency, excluding throttle wait",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		cacheSymbols: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "finscreen_cache_symbols",
				Help: "Number of symbols in the cache",
			},
		),
		screened: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscreen_screen_outcomes_total",
				Help: "Screen verdicts by screen and deciding step",
			},
			[]string{"screen", "step"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finscreen_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
	}
}

func (r *Recorder) RecordFetch(endpoint string, ok bool, seconds float64) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.fetches.WithLabelValues(endpoint, result).Inc()
	r.fetchDuration.WithLabelValues(endpoint).Observe(seconds)
}

func (r *Recorder) RecordCacheSize(n int) {
	r.cacheSymbols.Set(float64(n))
}

// RecordScreenOutcome counts a verdict. step is "passed" for passes.
func (r *Recorder) RecordScreenOutcome(screen, step string) {
	r.screened.WithLabelValues(screen, step).Inc()
}

func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
