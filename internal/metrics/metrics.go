package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RunsTotal    *prometheus.CounterVec
	RunDuration  *prometheus.HistogramVec
	RunsInFlight prometheus.Gauge

	SearchRequestsTotal   *prometheus.CounterVec
	SearchRequestDuration *prometheus.HistogramVec

	ClassifyRequestsTotal   *prometheus.CounterVec
	ClassifyRequestDuration *prometheus.HistogramVec
	ClassifyReuseTotal      prometheus.Counter
	NeutralFallbacksTotal   prometheus.Counter

	FetchesTotal    *prometheus.CounterVec
	FetchBytesTotal prometheus.Counter

	StoreHitsTotal   prometheus.Counter
	StoreMissesTotal prometheus.Counter

	ExtractionsTotal *prometheus.CounterVec

	RateLimitHitsTotal *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		RunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adversify_runs_total",
				Help: "Total number of screening runs by terminal status",
			},
			[]string{"status"},
		),
		RunDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adversify_run_duration_seconds",
				Help:    "Screening run duration in seconds",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"status"},
		),
		RunsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "adversify_runs_in_flight",
				Help: "Number of screening runs currently executing",
			},
		),

		SearchRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adversify_search_requests_total",
				Help: "Total number of search engine page requests",
			},
			[]string{"language", "status"},
		),
		SearchRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adversify_search_request_duration_seconds",
				Help:    "Search page request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"language"},
		),

		ClassifyRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adversify_classify_requests_total",
				Help: "Total number of classification batch calls",
			},
			[]string{"language", "status"},
		),
		ClassifyRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adversify_classify_request_duration_seconds",
				Help:    "Classification call duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
			},
			[]string{"language"},
		),
		ClassifyReuseTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "adversify_classify_reuse_total",
				Help: "Batches scored from persisted results instead of a new call",
			},
		),
		NeutralFallbacksTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "adversify_neutral_fallbacks_total",
				Help: "Items that received the neutral fallback score",
			},
		),

		FetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adversify_fetches_total",
				Help: "Total number of content fetches",
			},
			[]string{"status"},
		),
		FetchBytesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "adversify_fetch_bytes_total",
				Help: "Total bytes downloaded by the content fetcher",
			},
		),

		StoreHitsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "adversify_store_hits_total",
				Help: "Content store lookups that found existing content",
			},
		),
		StoreMissesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "adversify_store_misses_total",
				Help: "Content store lookups that required a fetch",
			},
		),

		ExtractionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adversify_extractions_total",
				Help: "Total number of text extraction attempts",
			},
			[]string{"kind", "status"},
		),

		RateLimitHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adversify_rate_limit_hits_total",
				Help: "Total number of rate limit hits",
			},
			[]string{"client"},
		),
	}

	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) RecordRun(status string, duration time.Duration) {
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDuration.WithLabelValues(status).Observe(duration.Seconds())
}

func (m *Metrics) RecordSearchRequest(language, status string, duration time.Duration) {
	m.SearchRequestsTotal.WithLabelValues(language, status).Inc()
	m.SearchRequestDuration.WithLabelValues(language).Observe(duration.Seconds())
}

func (m *Metrics) RecordClassifyRequest(language, status string, duration time.Duration) {
	m.ClassifyRequestsTotal.WithLabelValues(language, status).Inc()
	m.ClassifyRequestDuration.WithLabelValues(language).Observe(duration.Seconds())
}

func (m *Metrics) RecordClassifyReuse() {
	m.ClassifyReuseTotal.Inc()
}

func (m *Metrics) RecordNeutralFallback(items int) {
	m.NeutralFallbacksTotal.Add(float64(items))
}

func (m *Metrics) RecordFetch(status string, bytes int) {
	m.FetchesTotal.WithLabelValues(status).Inc()
	m.FetchBytesTotal.Add(float64(bytes))
}

func (m *Metrics) RecordStoreHit() {
	m.StoreHitsTotal.Inc()
}

func (m *Metrics) RecordStoreMiss() {
	m.StoreMissesTotal.Inc()
}

func (m *Metrics) RecordExtraction(kind, status string) {
	m.ExtractionsTotal.WithLabelValues(kind, status).Inc()
}

func (m *Metrics) RecordRateLimitHit(client string) {
	m.RateLimitHitsTotal.WithLabelValues(client).Inc()
}

func (m *Metrics) IncRunsInFlight() {
	m.RunsInFlight.Inc()
}

func (m *Metrics) DecRunsInFlight() {
	m.RunsInFlight.Dec()
}
