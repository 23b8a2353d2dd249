package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-core/internal/apperrors"
	"github.com/MKhiriev/go-shop-core/internal/service"
	"github.com/MKhiriev/go-shop-core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_UnknownRouteAnswersNormalizedNotFound(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	rr := executeRoute(h, http.MethodGet, "/no/such/route", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := decodeErrorResponse(t, rr)
	assert.False(t, body.Success)
	assert.Equal(t, kindMessageMap[apperrors.KindNotFound], body.Message)
}

func TestRoutes_WrongMethodAnswersNormalizedNotFound(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	rr := executeRoute(h, http.MethodDelete, "/health", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, decodeErrorResponse(t, rr).Success)
}

func TestRoutes_ProtectedRouteWithoutToken(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	rr := executeRoute(h, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, decodeErrorResponse(t, rr).Success)
}

func TestRoutes_AdminRouteForbiddenForCustomer(t *testing.T) {
	h := newTestHandler(&fakeAuthService{
		verifyToken: models.Token{UserID: 42},
		resolveUser: activeCustomer,
	})

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, msgInsufficientPermissions, decodeErrorResponse(t, rr).Message)
}

func TestRoutes_AdminRouteAllowedForAdmin(t *testing.T) {
	admin := activeCustomer
	admin.Role = models.RoleAdmin

	h := newTestHandler(&fakeAuthService{
		verifyToken: models.Token{UserID: 42},
		resolveUser: admin,
	})

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_StorefrontServesAnonymousAndAuthenticated(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		h := newTestHandler(&fakeAuthService{verifyErr: service.ErrTokenIsExpiredOrInvalid})

		rr := executeRoute(h, http.MethodGet, "/api/storefront", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"personalized":false`)
	})

	t.Run("authenticated", func(t *testing.T) {
		h := newTestHandler(&fakeAuthService{
			verifyToken: models.Token{UserID: 42},
			resolveUser: activeCustomer,
		})

		router := h.Init()
		req := httptest.NewRequest(http.MethodGet, "/api/storefront", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"personalized":true`)
		assert.Contains(t, rr.Body.String(), "Jane Doe")
	})
}

func TestRoutes_EveryRequestCarriesRequestID(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	first := executeRoute(h, http.MethodGet, "/health", nil)
	second := executeRoute(h, http.MethodGet, "/health", nil)

	assert.NotEmpty(t, first.Header().Get(requestIDHeader))
	assert.NotEmpty(t, second.Header().Get(requestIDHeader))
	assert.NotEqual(t, first.Header().Get(requestIDHeader), second.Header().Get(requestIDHeader))
}

func TestRoutes_RejectionsAreMeasured(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	executeRoute(h, http.MethodGet, "/api/profile", nil)

	report := h.telemetry.HealthReport()
	assert.Equal(t, 1, report.RequestCount, "auth rejections flow into telemetry")
}

func TestRoutes_PanicIsMeasuredAsError(t *testing.T) {
	h := newTestHandler(&fakeAuthService{
		verifyToken: models.Token{UserID: 42},
		resolveUser: activeCustomer,
	})

	router := h.Init()
	router.Get("/api/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/boom", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	report := h.telemetry.HealthReport()
	require.Equal(t, 1, report.RequestCount)
	assert.InDelta(t, 1.0, report.ErrorRate, 0.001)
}
