package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/utils"
	"github.com/MKhiriev/go-shop-core/models"
)

// storefrontResponse is served by the public storefront entry point.
// Personalized is true only when the optional-auth middleware attached a
// caller; anonymous and failed-token requests get the generic greeting.
type storefrontResponse struct {
	Success      bool   `json:"success"`
	Personalized bool   `json:"personalized"`
	Greeting     string `json:"greeting"`
}

// getStorefront demonstrates the fail-open pipeline: it is mounted behind
// optionalAuth and must answer every request, with or without a caller.
func (h *Handler) getStorefront(w http.ResponseWriter, r *http.Request) {
	response := storefrontResponse{
		Success:  true,
		Greeting: "welcome to the shop",
	}

	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		response.Personalized = true
		response.Greeting = "welcome back, " + user.FullName()
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing storefront response")
	}
}

// profileResponse wraps the authenticated caller's own account snapshot.
type profileResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}

// getProfile serves the caller's own account record. Mounted behind the
// mandatory auth gate, so the user snapshot is always present here.
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.respondErrorStatus(w, r, http.StatusUnauthorized, msgUnauthorizedAccess, nil)
		return
	}

	if _, err := utils.WriteJSON(w, profileResponse{Success: true, User: *user}, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing profile response")
	}
}

// adminOverviewResponse aggregates the operational views behind the admin
// role gate into one dashboard payload.
type adminOverviewResponse struct {
	Success bool                 `json:"success"`
	Health  models.HealthReport  `json:"health"`
	Alerts  models.AlertsSummary `json:"alerts"`
	System  models.SystemStats   `json:"system"`
}

// getAdminOverview serves a combined operational dashboard. Mounted behind
// the admin role gate.
func (h *Handler) getAdminOverview(w http.ResponseWriter, r *http.Request) {
	response := adminOverviewResponse{
		Success: true,
		Health:  h.telemetry.HealthReport(),
		Alerts:  h.telemetry.ListAlerts(),
		System:  h.collectSystemStats(),
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing admin overview")
	}
}
