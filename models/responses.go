// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SupportContact is the static support block attached to every error
// response. It never varies per request so that user-facing failures always
// point at the same escalation path.
type SupportContact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Hours string `json:"hours"`
}

// ErrorResponse is the single user-facing error contract shared by every
// endpoint. The body carries only the category-level message, the static
// support block and a timestamp. Stack traces, internal identifiers and raw
// driver errors never appear here.
type ErrorResponse struct {
	// Success is always false for error responses.
	Success bool `json:"success"`

	// Message is the fixed user-safe wording for the error category.
	Message string `json:"message"`

	// Support is the static support-contact block.
	Support SupportContact `json:"support"`

	// Timestamp is the instant the error response was produced.
	Timestamp time.Time `json:"timestamp"`

	// ValidationDetails carries field-level validation information for
	// validation failures (e.g. {"field": "email", "message": "invalid
	// format"}). Omitted for every other category.
	ValidationDetails map[string]string `json:"validation_details,omitempty"`
}

// HealthReport is the aggregate served by GET /health.
type HealthReport struct {
	// Status is "healthy" or "unhealthy" depending on whether the error
	// rate over the trailing window exceeds the configured threshold.
	Status string `json:"status"`

	// RequestCount is the number of samples in the trailing window.
	RequestCount int `json:"request_count"`

	// AverageResponseTimeMs is the mean request duration over the window.
	AverageResponseTimeMs float64 `json:"average_response_time_ms"`

	// ErrorRate is the fraction of failed requests over the window, 0..1.
	ErrorRate float64 `json:"error_rate"`

	// GeneratedAt is the instant the report was computed.
	GeneratedAt time.Time `json:"generated_at"`
}

// MetricsExport is the structured (JSON) form of a windowed metrics export.
type MetricsExport struct {
	// Total is the number of samples inside the export window.
	Total int `json:"total"`

	// WindowHours is the trailing window the export covers.
	WindowHours int `json:"window_hours"`

	// Samples are the retained measurements inside the window, in
	// recording order.
	Samples []MetricSample `json:"samples"`

	// GeneratedAt is the instant the export was produced.
	GeneratedAt time.Time `json:"generated_at"`
}

// AlertsSummary is the payload served by GET /alerts.
type AlertsSummary struct {
	// Alerts lists every retained alert in creation order.
	Alerts []Alert `json:"alerts"`

	// ActiveCount is the number of unacknowledged alerts.
	ActiveCount int `json:"active_count"`

	// AcknowledgedCount is the number of acknowledged alerts.
	AcknowledgedCount int `json:"acknowledged_count"`
}

// SystemStats is the raw process/system snapshot served by GET /system-stats.
type SystemStats struct {
	// UptimeSeconds is the time elapsed since process start.
	UptimeSeconds float64 `json:"uptime_seconds"`

	// MemoryAllocBytes is the number of heap bytes currently allocated.
	MemoryAllocBytes uint64 `json:"memory_alloc_bytes"`

	// MemorySysBytes is the total memory obtained from the OS.
	MemorySysBytes uint64 `json:"memory_sys_bytes"`

	// NumGC is the number of completed garbage-collection cycles.
	NumGC uint32 `json:"num_gc"`

	// NumCPU is the number of logical CPUs available to the process.
	NumCPU int `json:"num_cpu"`

	// NumGoroutine is the current number of live goroutines.
	NumGoroutine int `json:"num_goroutine"`

	// Platform is the operating system and architecture pair
	// (e.g. "linux/amd64").
	Platform string `json:"platform"`

	// GoVersion is the runtime version the binary was built with.
	GoVersion string `json:"go_version"`

	// PID is the operating-system process identifier.
	PID int `json:"pid"`

	// Environment is the deployment environment name (e.g. "production").
	Environment string `json:"environment"`

	// Version is the application build version.
	Version string `json:"version"`
}
