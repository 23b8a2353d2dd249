package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-shop-core/internal/apperrors"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/service"
	"github.com/MKhiriev/go-shop-core/internal/store"
	"github.com/MKhiriev/go-shop-core/internal/utils"
	"github.com/MKhiriev/go-shop-core/models"
)

// supportContact is the static escalation block attached to every error
// response. It never varies per request or per error category.
var supportContact = models.SupportContact{
	Email: "support@go-shop.example.com",
	Phone: "+7 (800) 555-01-99",
	Hours: "Mon-Fri 09:00-18:00 MSK",
}

// kindStatusMap fixes the HTTP status for each error category. The mapping
// is closed: categories missing here fall back to 500 via statusForKind.
var kindStatusMap = map[apperrors.Kind]int{
	apperrors.KindDatabase:   http.StatusInternalServerError,
	apperrors.KindProduct:    http.StatusInternalServerError,
	apperrors.KindOrder:      http.StatusInternalServerError,
	apperrors.KindPayment:    http.StatusInternalServerError,
	apperrors.KindAuth:       http.StatusUnauthorized,
	apperrors.KindFile:       http.StatusBadRequest,
	apperrors.KindConnection: http.StatusServiceUnavailable,
	apperrors.KindNotFound:   http.StatusNotFound,
	apperrors.KindValidation: http.StatusBadRequest,
	apperrors.KindGeneral:    http.StatusInternalServerError,
}

// kindMessageMap fixes the user-facing wording for each error category.
// The same category always yields the same message, regardless of which
// subsystem raised the failure. Raw error text never reaches the client.
var kindMessageMap = map[apperrors.Kind]string{
	apperrors.KindDatabase:   "a storage error occurred, please try again later",
	apperrors.KindProduct:    "the product operation could not be completed",
	apperrors.KindOrder:      "the order operation could not be completed",
	apperrors.KindPayment:    "the payment could not be processed",
	apperrors.KindAuth:       "authentication required",
	apperrors.KindFile:       "the uploaded file could not be processed",
	apperrors.KindConnection: "a downstream service is temporarily unavailable",
	apperrors.KindNotFound:   "the requested resource was not found",
	apperrors.KindValidation: "the request contains invalid data",
	apperrors.KindGeneral:    "an unexpected error occurred, please try again later",
}

// sentinelKindMap assigns a category to errors raised as plain sentinels by
// the service and store layers, so they normalise the same way as
// [apperrors.Error] values.
var sentinelKindMap = map[error]apperrors.Kind{
	service.ErrInvalidDataProvided:     apperrors.KindValidation,
	service.ErrTokenIsExpired:          apperrors.KindAuth,
	service.ErrTokenIsExpiredOrInvalid: apperrors.KindAuth,
	service.ErrTokenCreationFailed:     apperrors.KindAuth,
	service.ErrUserNotFoundOrInactive:  apperrors.KindAuth,

	store.ErrNoActiveUserFound: apperrors.KindNotFound,
	store.ErrConnectionFailure: apperrors.KindConnection,
	store.ErrBuildingSQLQuery:  apperrors.KindDatabase,
	store.ErrExecutingQuery:    apperrors.KindDatabase,
	store.ErrScanningRow:       apperrors.KindDatabase,
	store.ErrArchiveClosed:     apperrors.KindDatabase,
}

// kindOf resolves the error category for any failure crossing the HTTP
// boundary: layer sentinels first, then the category carried by a wrapped
// [apperrors.Error], then the general catch-all.
func kindOf(err error) apperrors.Kind {
	for sentinel, kind := range sentinelKindMap {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return apperrors.KindOf(err)
}

func statusForKind(kind apperrors.Kind) int {
	if status, ok := kindStatusMap[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func messageForKind(kind apperrors.Kind) string {
	if message, ok := kindMessageMap[kind]; ok {
		return message
	}
	return kindMessageMap[apperrors.KindGeneral]
}

// respondError is the single exit point for failed requests.
//
// It classifies err into its category, logs the full technical detail
// (raw error, method, URL, request id) to the operational log, feeds the
// technical message to the telemetry capture for this request, and writes
// the fixed category-level body. Validation failures additionally carry
// their field-level details.
//
// If the response has already started streaming, no second write is
// attempted; the failure is only logged.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := kindOf(err)
	status := statusForKind(kind)

	log := logger.FromRequest(r)
	log.Error().
		Err(err).
		Str("kind", string(kind)).
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Str("request_id", utils.GetRequestIDFromContext(r.Context())).
		Int("status", status).
		Msg("request failed")

	captureError(r.Context(), err.Error())

	var validationDetails map[string]string
	if kind == apperrors.KindValidation {
		validationDetails = apperrors.DetailsOf(err)
	}

	h.writeErrorBody(w, r, status, messageForKind(kind), validationDetails)
}

// respondErrorStatus writes an error body with an explicit status and
// wording, for boundary checks whose status depends on which step failed
// rather than on the error category alone. The technical cause still goes
// to the log and the telemetry capture, never to the client.
func (h *Handler) respondErrorStatus(w http.ResponseWriter, r *http.Request, status int, userMessage string, cause error) {
	log := logger.FromRequest(r)
	log.Error().
		Err(cause).
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Int("status", status).
		Msg(userMessage)

	if cause != nil {
		captureError(r.Context(), cause.Error())
	}

	h.writeErrorBody(w, r, status, userMessage, nil)
}

func (h *Handler) writeErrorBody(w http.ResponseWriter, r *http.Request, status int, message string, validationDetails map[string]string) {
	if responseStarted(w) {
		logger.FromRequest(r).Warn().
			Int("status", status).
			Msg("response already started, skipping error body")
		return
	}

	body := models.ErrorResponse{
		Success:           false,
		Message:           message,
		Support:           supportContact,
		Timestamp:         time.Now(),
		ValidationDetails: validationDetails,
	}

	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing error response")
	}
}

// responseStarted reports whether response bytes or headers already went out
// on w. Only observable when w is this package's responseWriter; bare
// writers conservatively report false.
func responseStarted(w http.ResponseWriter) bool {
	rw, ok := w.(*responseWriter)
	return ok && rw.wroteHeader
}
