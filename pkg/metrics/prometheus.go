// Package metrics provides Prometheus metrics for the Platter recipe dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Source Metrics - Recipe retrieval health
	sourceFetchLatency prometheus.Histogram
	sourceFetchErrors  prometheus.Counter
	sourceFallbacks    prometheus.Counter
	sourceRecipes      prometheus.Gauge
	sourceInvalid      prometheus.Counter

	// Pipeline Metrics - What the dashboard actually computes
	recomputeDuration prometheus.Histogram
	recomputeCount    prometheus.Counter
	filteredSetSize   prometheus.Histogram

	// Catalog Metrics - Collection lifecycle
	catalogSize       prometheus.Gauge
	catalogGeneration prometheus.Gauge
	catalogSwaps        prometheus.Counter
	catalogSwapDuration prometheus.Histogram
	catalogDuplicates   prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrors          *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "platter",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	// Source metrics
	m.sourceFetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_fetch_latency_milliseconds",
		Help:      "Histogram of recipe source fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.sourceFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_fetch_errors_total",
		Help:      "Total number of failed recipe source fetches",
	})

	m.sourceFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_fallbacks_total",
		Help:      "Total number of times the mock source served in place of the API",
	})

	m.sourceRecipes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_recipes",
		Help:      "Number of recipes returned by the last successful fetch",
	})

	m.sourceInvalid = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "source_invalid_records_total",
		Help:      "Total number of records dropped by source-side validation",
	})

	// Pipeline metrics
	m.recomputeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recompute_duration_milliseconds",
		Help:      "Full derived-views recompute duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.recomputeCount = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recompute_total",
		Help:      "Total number of derived-views recomputations",
	})

	m.filteredSetSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filtered_set_size",
		Help:      "Size of the filtered recipe set per recompute",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})

	// Catalog metrics
	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Current number of recipes held in the catalog",
	})

	m.catalogGeneration = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_generation",
		Help:      "Monotonic generation counter of the recipe collection",
	})

	m.catalogSwaps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_swaps_total",
		Help:      "Total number of collection replacements",
	})

	m.catalogSwapDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_swap_duration_ms",
		Help:      "Duration of collection replacements in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.catalogDuplicates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_duplicate_ids_total",
		Help:      "Total number of records dropped for carrying a duplicate id",
	})

	// HTTP metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_errors_total",
			Help:      "Total number of HTTP error responses by endpoint and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// Source metrics functions.

// RecordSourceFetchLatency records a source fetch latency in milliseconds.
func RecordSourceFetchLatency(latencyMs float64) {
	globalManager.sourceFetchLatency.Observe(latencyMs)
}

// RecordSourceFetchError increments the fetch error counter.
func RecordSourceFetchError() {
	globalManager.sourceFetchErrors.Inc()
}

// RecordSourceFallback increments the fallback counter.
func RecordSourceFallback() {
	globalManager.sourceFallbacks.Inc()
}

// UpdateSourceRecipes sets the size of the last fetched collection.
func UpdateSourceRecipes(count int) {
	globalManager.sourceRecipes.Set(float64(count))
}

// RecordSourceInvalidRecord increments the dropped-record counter.
func RecordSourceInvalidRecord() {
	globalManager.sourceInvalid.Inc()
}

// Pipeline metrics functions.

// RecordRecomputeDuration records a full pipeline recompute duration.
func RecordRecomputeDuration(durationMs float64) {
	globalManager.recomputeDuration.Observe(durationMs)
	globalManager.recomputeCount.Inc()
}

// RecordFilteredSetSize records the filtered set size for a recompute.
func RecordFilteredSetSize(size int) {
	globalManager.filteredSetSize.Observe(float64(size))
}

// Catalog metrics functions.

// UpdateCatalogSize sets the current catalog size.
func UpdateCatalogSize(size int) {
	globalManager.catalogSize.Set(float64(size))
}

// UpdateCatalogGeneration sets the current collection generation.
func UpdateCatalogGeneration(gen int64) {
	globalManager.catalogGeneration.Set(float64(gen))
}

// RecordCatalogSwap increments the collection replacement counter.
func RecordCatalogSwap() {
	globalManager.catalogSwaps.Inc()
}

// RecordCatalogSwapDuration records how long a collection replacement took.
func RecordCatalogSwapDuration(durationMs float64) {
	globalManager.catalogSwapDuration.Observe(durationMs)
}

// RecordCatalogDuplicate increments the duplicate-id counter.
func RecordCatalogDuplicate() {
	globalManager.catalogDuplicates.Inc()
}

// HTTP metrics functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records an HTTP error response.
func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.httpErrors.WithLabelValues(endpoint, method, errorType).Inc()
}

// System metrics functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
