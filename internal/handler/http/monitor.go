package http

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/MKhiriev/go-shop-core/internal/apperrors"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
	"github.com/MKhiriev/go-shop-core/internal/utils"
	"github.com/MKhiriev/go-shop-core/models"
)

// getHealth serves the aggregate health report over the retained samples.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.telemetry.HealthReport(), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing health report")
	}
}

// getMetrics serves the windowed metrics export.
//
// Query parameters:
//   - format: "json" (default) or "csv"
//   - hours:  trailing window in hours, default 1
//
// An unsupported format yields a 500 with the generic export-failure body,
// never the raw error.
func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = telemetry.FormatJSON
	}

	hours := 1
	if rawHours := r.URL.Query().Get("hours"); rawHours != "" {
		parsed, err := strconv.Atoi(rawHours)
		if err != nil || parsed <= 0 {
			h.respondError(w, r, apperrors.Validation("invalid hours query parameter", map[string]string{
				"field":   "hours",
				"message": "must be a positive integer",
			}))
			return
		}
		hours = parsed
	}

	payload, err := h.telemetry.Export(format, hours)
	if err != nil {
		h.respondErrorStatus(w, r, http.StatusInternalServerError, "metrics export failed", err)
		return
	}

	switch format {
	case telemetry.FormatCSV:
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="metrics.csv"`)
	default:
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing metrics export")
	}
}

// getAlerts serves the alert list with active/acknowledged counts.
func (h *Handler) getAlerts(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.telemetry.ListAlerts(), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing alerts list")
	}
}

// alertActionRequest is the body accepted by POST /alerts.
type alertActionRequest struct {
	Action  string `json:"action"`
	AlertID int64  `json:"alertId"`
}

// alertActionResponse reports the outcome of an alert action.
type alertActionResponse struct {
	Success      bool  `json:"success"`
	AlertID      int64 `json:"alert_id"`
	Acknowledged bool  `json:"acknowledged"`
}

// acknowledgeAlert handles POST /alerts with {action:"acknowledge", alertId}.
//
// Acknowledging an unknown id is not an error: the response reports
// acknowledged=false and the request still succeeds, so operators can
// retry stale alert lists safely.
func (h *Handler) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	var request alertActionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respondError(w, r, apperrors.Wrap(apperrors.KindValidation, "malformed alert action body", err))
		return
	}

	if request.Action != "acknowledge" {
		h.respondError(w, r, apperrors.Wrap(apperrors.KindValidation, "unsupported alert action", ErrUnknownAlertAction))
		return
	}

	acknowledged := h.telemetry.AcknowledgeAlert(request.AlertID)

	response := alertActionResponse{
		Success:      true,
		AlertID:      request.AlertID,
		Acknowledged: acknowledged,
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing alert action response")
	}
}

// getSystemStats serves a raw process/system snapshot.
func (h *Handler) getSystemStats(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.collectSystemStats(), http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing system stats")
	}
}

func (h *Handler) collectSystemStats() models.SystemStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return models.SystemStats{
		UptimeSeconds:    time.Since(h.startedAt).Seconds(),
		MemoryAllocBytes: memStats.Alloc,
		MemorySysBytes:   memStats.Sys,
		NumGC:            memStats.NumGC,
		NumCPU:           runtime.NumCPU(),
		NumGoroutine:     runtime.NumGoroutine(),
		Platform:         runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion:        runtime.Version(),
		PID:              os.Getpid(),
		Environment:      h.environment,
		Version:          h.version,
	}
}
