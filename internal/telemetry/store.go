// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry holds the in-process request observability state:
// metric samples recorded per completed request, threshold-driven alerts
// and the aggregate views served by the monitoring endpoints.
package telemetry

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/models"
)

// ErrUnsupportedFormat is returned by Export when the requested metrics
// format is not one of the supported encodings.
var ErrUnsupportedFormat = errors.New("unsupported metrics export format")

// Export formats accepted by [Store.Export].
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Health statuses reported by [Store.HealthReport].
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Fallbacks applied when the telemetry configuration leaves a knob unset.
const (
	defaultErrorRateThreshold = 0.5
	defaultLatencyThresholdMs = 5000
	defaultRetentionHours     = 24
	defaultMaxSamples         = 10000

	// alertCooldown bounds how often the same threshold condition may
	// raise a fresh alert, so a burst of slow requests produces one
	// alert instead of hundreds.
	alertCooldown = time.Minute
)

// Store is the process-wide aggregator of request metrics and alerts.
//
// It is an operational cache, not a system of record: samples live in memory,
// bounded by a retention window and a hard sample cap, and are handed to an
// archive on eviction. All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	samples []models.MetricSample
	alerts  []*models.Alert

	// nextAlertID is the id assigned to the next raised alert.
	// Ids are strictly increasing for the lifetime of the process.
	nextAlertID int64

	// lastAlertAt tracks, per severity, when an alert was last raised,
	// enforcing alertCooldown between repeats.
	lastAlertAt map[models.AlertSeverity]time.Time

	errorRateThreshold float64
	latencyThresholdMs int64
	retention          time.Duration
	maxSamples         int

	// onAlert, when set, receives a copy of every newly raised alert on a
	// separate goroutine. Used for best-effort outbound notification.
	onAlert func(models.Alert)

	// now is the clock used for timestamps and window math.
	// Overridable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewStore builds a telemetry store from the given configuration, falling
// back to safe defaults for any unset threshold or bound.
func NewStore(cfg config.Telemetry, log *logger.Logger) *Store {
	if cfg.ErrorRateThreshold <= 0 || cfg.ErrorRateThreshold > 1 {
		cfg.ErrorRateThreshold = defaultErrorRateThreshold
	}
	if cfg.LatencyThresholdMs <= 0 {
		cfg.LatencyThresholdMs = defaultLatencyThresholdMs
	}
	if cfg.RetentionHours <= 0 {
		cfg.RetentionHours = defaultRetentionHours
	}
	if cfg.MaxSamples <= 0 {
		cfg.MaxSamples = defaultMaxSamples
	}

	return &Store{
		samples:            make([]models.MetricSample, 0, 256),
		lastAlertAt:        make(map[models.AlertSeverity]time.Time),
		nextAlertID:        1,
		errorRateThreshold: cfg.ErrorRateThreshold,
		latencyThresholdMs: cfg.LatencyThresholdMs,
		retention:          time.Duration(cfg.RetentionHours) * time.Hour,
		maxSamples:         cfg.MaxSamples,
		now:                time.Now,
		logger:             log,
	}
}

// SetClock replaces the time source used for timestamps and window math.
// Test support; must be called before the store is shared.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// OnAlert registers fn to be called with a copy of every alert raised after
// this point. fn runs on its own goroutine so a slow consumer cannot stall
// the request path. Must be called before the store is shared.
func (s *Store) OnAlert(fn func(models.Alert)) {
	s.onAlert = fn
}

// RecordRequest appends one sample for a completed request and evaluates the
// alert thresholds.
//
// Recording never propagates a failure to the caller: the observed request
// already finished, and a broken observability path must not break the next
// one. Any internal panic is swallowed and logged.
func (s *Store) RecordRequest(endpoint, method string, statusCode int, durationMs int64, errorMessage string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Any("panic", r).Msg("metric recording failed")
		}
	}()

	now := s.now()
	sample := models.MetricSample{
		Endpoint:     endpoint,
		Method:       method,
		StatusCode:   statusCode,
		DurationMs:   durationMs,
		Timestamp:    now,
		ErrorMessage: errorMessage,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples = append(s.samples, sample)
	if len(s.samples) > s.maxSamples {
		s.samples = s.samples[len(s.samples)-s.maxSamples:]
	}

	s.evaluateThresholds(sample, now)
}

// evaluateThresholds raises alerts for the just-recorded sample.
// Caller must hold s.mu.
func (s *Store) evaluateThresholds(sample models.MetricSample, now time.Time) {
	if sample.DurationMs > s.latencyThresholdMs {
		s.raiseAlert(models.SeverityWarning, now,
			fmt.Sprintf("slow request: %s %s took %dms (threshold %dms)",
				sample.Method, sample.Endpoint, sample.DurationMs, s.latencyThresholdMs))
	}

	if !sample.IsError() {
		return
	}

	count, _, errorRate := s.aggregate(now.Add(-s.retention))
	if count >= 10 && errorRate > s.errorRateThreshold {
		s.raiseAlert(models.SeverityCritical, now,
			fmt.Sprintf("elevated error rate: %.0f%% of the last %d requests failed",
				errorRate*100, count))
	}
}

// raiseAlert appends a new alert unless one of the same severity was raised
// within the cooldown. Caller must hold s.mu.
func (s *Store) raiseAlert(severity models.AlertSeverity, now time.Time, message string) {
	if last, ok := s.lastAlertAt[severity]; ok && now.Sub(last) < alertCooldown {
		return
	}
	s.lastAlertAt[severity] = now

	alert := &models.Alert{
		ID:        s.nextAlertID,
		Severity:  severity,
		Message:   message,
		CreatedAt: now,
	}
	s.nextAlertID++
	s.alerts = append(s.alerts, alert)

	s.logger.Warn().
		Int64("alert_id", alert.ID).
		Str("severity", string(severity)).
		Msg(message)

	if s.onAlert != nil {
		go s.onAlert(*alert)
	}
}

// aggregate computes count, average latency and error rate over samples not
// older than cutoff. Caller must hold s.mu.
func (s *Store) aggregate(cutoff time.Time) (count int, avgLatencyMs float64, errorRate float64) {
	var totalMs, errorCount int64
	for _, sample := range s.samples {
		if sample.Timestamp.Before(cutoff) {
			continue
		}
		count++
		totalMs += sample.DurationMs
		if sample.IsError() {
			errorCount++
		}
	}

	if count == 0 {
		return 0, 0, 0
	}
	return count, float64(totalMs) / float64(count), float64(errorCount) / float64(count)
}

// HealthReport aggregates all retained samples into a single status view.
// The status flips to unhealthy once the error rate exceeds the configured
// threshold.
func (s *Store) HealthReport() models.HealthReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	count, avgLatency, errorRate := s.aggregate(now.Add(-s.retention))

	status := StatusHealthy
	if errorRate > s.errorRateThreshold {
		status = StatusUnhealthy
	}

	return models.HealthReport{
		Status:                status,
		RequestCount:          count,
		AverageResponseTimeMs: avgLatency,
		ErrorRate:             errorRate,
		GeneratedAt:           now,
	}
}

// Export serializes the samples recorded during the trailing windowHours
// into the requested format.
//
// FormatJSON yields a structured [models.MetricsExport] document and
// FormatCSV a delimited table with one row per sample. Both carry the same
// samples in the same order. Any other format fails with
// [ErrUnsupportedFormat].
func (s *Store) Export(format string, windowHours int) ([]byte, error) {
	if windowHours <= 0 {
		windowHours = 1
	}

	s.mu.Lock()
	now := s.now()
	cutoff := now.Add(-time.Duration(windowHours) * time.Hour)
	window := make([]models.MetricSample, 0, len(s.samples))
	for _, sample := range s.samples {
		if !sample.Timestamp.Before(cutoff) {
			window = append(window, sample)
		}
	}
	s.mu.Unlock()

	switch format {
	case FormatJSON:
		return json.Marshal(models.MetricsExport{
			Total:       len(window),
			WindowHours: windowHours,
			Samples:     window,
			GeneratedAt: now,
		})
	case FormatCSV:
		return marshalCSV(window)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func marshalCSV(samples []models.MetricSample) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(samples)+1)
	records = append(records, []string{"endpoint", "method", "status_code", "duration_ms", "timestamp", "error_message"})
	for _, sample := range samples {
		records = append(records, []string{
			sample.Endpoint,
			sample.Method,
			fmt.Sprintf("%d", sample.StatusCode),
			fmt.Sprintf("%d", sample.DurationMs),
			sample.Timestamp.Format(time.RFC3339Nano),
			sample.ErrorMessage,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("writing csv export: %w", err)
	}
	return buf.Bytes(), nil
}

// AcknowledgeAlert marks the alert with the given id acknowledged.
//
// Unknown ids report false rather than an error; acknowledging an already
// acknowledged alert reports true again without touching its
// AcknowledgedAt, so the operation is idempotent and tolerant of stale ids.
func (s *Store) AcknowledgeAlert(alertID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, alert := range s.alerts {
		if alert.ID != alertID {
			continue
		}
		if !alert.Acknowledged {
			ackedAt := s.now()
			alert.Acknowledged = true
			alert.AcknowledgedAt = &ackedAt
		}
		return true
	}
	return false
}

// ListAlerts returns a snapshot of every retained alert together with
// active/acknowledged counts. Mutating the returned alerts has no effect
// on the store.
func (s *Store) ListAlerts() models.AlertsSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := models.AlertsSummary{Alerts: make([]models.Alert, 0, len(s.alerts))}
	for _, alert := range s.alerts {
		summary.Alerts = append(summary.Alerts, *alert)
		if alert.Acknowledged {
			summary.AcknowledgedCount++
		} else {
			summary.ActiveCount++
		}
	}
	return summary
}

// Sweep evicts samples that fell out of the retention window and returns
// them so the caller can hand them to an archive. Alerts are kept for the
// process lifetime; only samples are bounded here.
func (s *Store) Sweep() []models.MetricSample {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.retention)

	firstKept := len(s.samples)
	for i, sample := range s.samples {
		if !sample.Timestamp.Before(cutoff) {
			firstKept = i
			break
		}
	}
	if firstKept == 0 {
		return nil
	}

	evicted := make([]models.MetricSample, firstKept)
	copy(evicted, s.samples[:firstKept])
	s.samples = append(s.samples[:0], s.samples[firstKept:]...)
	return evicted
}
