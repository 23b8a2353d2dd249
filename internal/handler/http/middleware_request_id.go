package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-shop-core/internal/utils"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// withRequestID assigns every request a process-unique identifier, stores it
// in the request context under [utils.RequestIDCtxKey], echoes it in the
// X-Request-ID response header, and scopes the request logger to it so every
// log line produced downstream carries the id.
//
// Inbound X-Request-ID values are ignored; the identifier is always
// generated locally so it cannot be spoofed across requests.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := h.requestIDs.Generate()

		ctx := context.WithValue(r.Context(), utils.RequestIDCtxKey, requestID)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
