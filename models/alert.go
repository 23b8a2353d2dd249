package models

import "time"

// AlertSeverity grades how urgent an operational alert is.
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is an operational notification raised by the telemetry store when a
// threshold condition is crossed (elevated error rate, abnormal latency).
//
// Alerts are created by the telemetry store, mutated only by acknowledgment,
// and never deleted during process lifetime except by the retention policy.
type Alert struct {
	// ID is a process-unique, strictly increasing alert identifier.
	ID int64 `json:"id"`

	// Severity grades the urgency of the alert.
	Severity AlertSeverity `json:"severity"`

	// Message is the human-readable description of the triggering condition.
	Message string `json:"message"`

	// CreatedAt is the instant the alert was raised.
	CreatedAt time.Time `json:"created_at"`

	// Acknowledged reports whether an operator has acknowledged the alert.
	Acknowledged bool `json:"acknowledged"`

	// AcknowledgedAt is the acknowledgment instant, nil while unacknowledged.
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}
