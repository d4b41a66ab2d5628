package models

import "time"

// SchedulingMetricsSnapshot aggregates engine counters for the summary
// endpoint.
type SchedulingMetricsSnapshot struct {
	AssignmentsCreated       uint64    `json:"assignments_created"`
	BookingRejections        uint64    `json:"booking_rejections"`
	PasteCreated             uint64    `json:"paste_created"`
	PasteSkipped             uint64    `json:"paste_skipped"`
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	GeneratedAt              time.Time `json:"generated_at"`
}
