package service

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the scheduling
// engine and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	assignmentTotal *prometheus.CounterVec
	rejectionTotal  *prometheus.CounterVec
	pasteTotal      *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter

	cacheHitCount        uint64
	cacheMissCount       uint64
	requestCount         uint64
	requestDurationTotal uint64
	assignmentCount      uint64
	rejectionCount       uint64
	pasteCreatedCount    uint64
	pasteSkippedCount    uint64
}

// NewMetricsService registers the scheduling collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	assignmentTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_assignments_created_total",
		Help: "Assignments created, labelled by booking path",
	}, []string{"via"})

	rejectionTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_booking_rejections_total",
		Help: "Booking attempts rejected, labelled by error code",
	}, []string{"reason"})

	pasteTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_paste_assignments_total",
		Help: "Day replication results, labelled created or skipped",
	}, []string{"result"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	registry.MustRegister(requestDuration, requestTotal, assignmentTotal, rejectionTotal, pasteTotal, cacheLatency, cacheHitRatio, cacheHits, cacheMisses)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		assignmentTotal: assignmentTotal,
		rejectionTotal:  rejectionTotal,
		pasteTotal:      pasteTotal,
		cacheLatency:    cacheLatency,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// CountAssignmentCreated increments the created counter for a booking path.
func (m *MetricsService) CountAssignmentCreated(via string) {
	if m == nil {
		return
	}
	m.assignmentTotal.WithLabelValues(via).Inc()
	atomic.AddUint64(&m.assignmentCount, 1)
}

// CountBookingRejected increments the rejection counter for an error code.
func (m *MetricsService) CountBookingRejected(reason string) {
	if m == nil {
		return
	}
	m.rejectionTotal.WithLabelValues(reason).Inc()
	atomic.AddUint64(&m.rejectionCount, 1)
}

// CountPasteResult increments the paste counter for "created" or "skipped".
func (m *MetricsService) CountPasteResult(result string) {
	if m == nil {
		return
	}
	m.pasteTotal.WithLabelValues(result).Inc()
	switch result {
	case "created":
		atomic.AddUint64(&m.pasteCreatedCount, 1)
	case "skipped":
		atomic.AddUint64(&m.pasteSkippedCount, 1)
	}
}

// RecordCacheOperation records cache hit/miss metrics and updates hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.cacheLatency != nil {
		m.cacheLatency.Observe(duration.Seconds())
	}
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	if total := hits + misses; total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// Snapshot returns aggregated scheduling metrics.
func (m *MetricsService) Snapshot() models.SchedulingMetricsSnapshot {
	if m == nil {
		return models.SchedulingMetricsSnapshot{}
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var cacheRatio float64
	if total := hits + misses; total > 0 {
		cacheRatio = float64(hits) / float64(total)
	}
	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.SchedulingMetricsSnapshot{
		AssignmentsCreated:       atomic.LoadUint64(&m.assignmentCount),
		BookingRejections:        atomic.LoadUint64(&m.rejectionCount),
		PasteCreated:             atomic.LoadUint64(&m.pasteCreatedCount),
		PasteSkipped:             atomic.LoadUint64(&m.pasteSkippedCount),
		CacheHitRatio:            cacheRatio,
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		GeneratedAt:              time.Now().UTC(),
	}
}
