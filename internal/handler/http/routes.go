package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-core/internal/apperrors"
	"github.com/MKhiriev/go-shop-core/models"
	"github.com/go-chi/chi/v5"
)

// Init wires the router.
//
// Middleware order matters: the request id comes first so every log line is
// correlated, the observer wraps everything below it so panics answered by
// the recovery boundary are still measured, and the recovery boundary sits
// innermost above the handlers.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID)
	router.Use(h.observe)
	router.Use(h.recoverPanics)

	// self-monitoring endpoints, excluded from telemetry capture
	router.Group(func(r chi.Router) {
		r.Get("/health", h.getHealth)
		r.Get("/metrics", h.getMetrics)
		r.Get("/alerts", h.getAlerts)
		r.Post("/alerts", h.acknowledgeAlert)
		r.Get("/system-stats", h.getSystemStats)
	})

	// public storefront, fail-open authentication
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Get("/api/storefront", h.getStorefront)
	})

	// authenticated area, fail-closed
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/profile", h.getProfile)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin))
			r.Get("/api/admin/overview", h.getAdminOverview)
		})
	})

	// Unknown routes and wrong methods both answer with the normalised
	// not-found body so no request bypasses the error contract.
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, apperrors.New(apperrors.KindNotFound, "no route matches "+r.Method+" "+r.URL.Path))
}
