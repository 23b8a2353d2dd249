package models

import "time"

// MetricSample is a single completed-request measurement recorded by the
// request observer. Samples are append-only and immutable once recorded.
type MetricSample struct {
	// Endpoint is the request path the sample was measured on.
	Endpoint string `json:"endpoint"`

	// Method is the HTTP method of the request.
	Method string `json:"method"`

	// StatusCode is the final HTTP status written to the response.
	StatusCode int `json:"status_code"`

	// DurationMs is the wall-clock time between request entry and the
	// response completion signal, in milliseconds.
	DurationMs int64 `json:"duration_ms"`

	// Timestamp is the completion instant of the request.
	Timestamp time.Time `json:"timestamp"`

	// ErrorMessage carries the technical error text for failed requests.
	// Empty for successful requests. Never exposed to end users; it is only
	// visible through the operator metrics export.
	ErrorMessage string `json:"error,omitempty"`
}

// IsError reports whether the sample describes a failed request.
// A request counts as failed when it carried an error or finished with a
// 5xx status.
func (m MetricSample) IsError() bool {
	return m.ErrorMessage != "" || m.StatusCode >= 500
}
