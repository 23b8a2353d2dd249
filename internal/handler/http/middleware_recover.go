package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-shop-core/internal/apperrors"
	"github.com/MKhiriev/go-shop-core/internal/logger"
)

// recoverPanics is the top-level failure boundary.
//
// A panic escaping the handler chain is logged with the full request context
// (method, URL, stack trace) and answered with the general-category error
// body. If the response has already begun streaming when the panic occurs,
// the middleware only logs and lets the transport close the connection
// rather than attempting a second write.
func (h *Handler) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw, ok := w.(*responseWriter)
		if !ok {
			rw = &responseWriter{ResponseWriter: w}
		}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered in request handler")

			h.respondError(rw, r, apperrors.New(apperrors.KindGeneral, fmt.Sprintf("panic: %v", rec)))
		}()

		next.ServeHTTP(rw, r)
	})
}
