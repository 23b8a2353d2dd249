package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// observerSkipPaths are the endpoints excluded from telemetry capture.
// Self-monitoring reads must not recursively generate telemetry about
// telemetry, and health probes would otherwise dominate the sample set.
var observerSkipPaths = map[string]struct{}{
	"/health":       {},
	"/metrics":      {},
	"/alerts":       {},
	"/system-stats": {},
	"/favicon.ico":  {},
}

// errorCaptureCtxKey carries the per-request errorCapture holder.
type errorCaptureCtxKey struct{}

// errorCapture collects the technical error message of a failed request so
// the observer can attach it to the metric sample after the handler chain
// returns. The first recorded message wins.
type errorCapture struct {
	mu      sync.Mutex
	message string
}

func (c *errorCapture) record(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.message == "" {
		c.message = message
	}
}

func (c *errorCapture) get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// captureError records the technical message of a request failure into the
// request's capture holder, if the observer installed one.
func captureError(ctx context.Context, message string) {
	if capture, ok := ctx.Value(errorCaptureCtxKey{}).(*errorCapture); ok {
		capture.record(message)
	}
}

// observe is the telemetry middleware wrapping the full request lifecycle.
//
// On entry it records the start time and wraps the response writer so the
// final status and the response-completion instant can be observed. After
// the handler chain returns it computes the duration exactly once and
// forwards one metric sample to the telemetry store. Requests to the
// self-monitoring endpoints bypass the middleware entirely.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, skip := observerSkipPaths[r.URL.Path]; skip {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		capture := &errorCapture{}
		ctx := context.WithValue(r.Context(), errorCaptureCtxKey{}, capture)

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r.WithContext(ctx))

		durationMs := time.Since(start).Milliseconds()
		h.telemetry.RecordRequest(r.URL.Path, r.Method, rw.statusCode(), durationMs, capture.get())
	})
}
