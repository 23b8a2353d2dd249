package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-core/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestRecoverPanics_PanicAnswersWithGeneralBody(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	middleware := h.recoverPanics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("order book corrupted")
	}))

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() { middleware.ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	body := decodeErrorResponse(t, rr)
	assert.False(t, body.Success)
	assert.Equal(t, kindMessageMap[apperrors.KindGeneral], body.Message)
	assert.NotContains(t, rr.Body.String(), "order book corrupted")
}

func TestRecoverPanics_NoDoubleWriteAfterStreamingStarted(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	middleware := h.recoverPanics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("streamed chunk"))
		panic("failed mid-stream")
	}))

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/export", nil))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() { middleware.ServeHTTP(rr, req) })
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "streamed chunk", rr.Body.String(), "the started response must be left alone")
}

func TestRecoverPanics_NormalRequestPassesThrough(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	middleware := h.recoverPanics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
