package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/service"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
	"github.com/MKhiriev/go-shop-core/internal/utils"
	"github.com/MKhiriev/go-shop-core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// fakeAuthService is a scriptable AuthService implementation for middleware
// tests.
type fakeAuthService struct {
	verifyToken models.Token
	verifyErr   error

	resolveUser models.User
	resolveErr  error
}

func (f *fakeAuthService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.verifyToken, f.verifyErr
}

func (f *fakeAuthService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	return f.resolveUser, f.resolveErr
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return models.Token{}, nil
}

func newTestHandler(authSvc service.AuthService) *Handler {
	return &Handler{
		services:   &service.Services{AuthService: authSvc},
		telemetry:  telemetry.NewStore(config.Telemetry{}, logger.Nop()),
		requestIDs: utils.NewRequestIDGenerator(),
		logger:     logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

var activeCustomer = models.User{
	UserID:    42,
	Email:     "jane.doe@example.com",
	FirstName: "Jane",
	LastName:  "Doe",
	Role:      models.RoleCustomer,
	Active:    true,
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty token part",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(test.header)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantToken, token)
		})
	}
}

// ---- mandatory auth middleware ----

func TestAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(&fakeAuthService{})

	rr := executeAuth(h, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	body := decodeErrorResponse(t, rr)
	assert.False(t, body.Success)
	assert.Equal(t, msgAuthenticationRequired, body.Message)
	assert.NotEmpty(t, body.Support.Email)
}

func TestAuth_InvalidOrExpiredToken(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
	}{
		{name: "expired token", verifyErr: service.ErrTokenIsExpired},
		{name: "invalid token", verifyErr: service.ErrTokenIsExpiredOrInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := newTestHandler(&fakeAuthService{verifyErr: test.verifyErr})

			rr := executeAuth(h, "Bearer some-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler must not run")
			}))

			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Equal(t, msgTokenInvalidOrExpired, decodeErrorResponse(t, rr).Message)
		})
	}
}

func TestAuth_UserNotFoundOrInactive(t *testing.T) {
	h := newTestHandler(&fakeAuthService{
		verifyToken: models.Token{UserID: 42},
		resolveErr:  service.ErrUserNotFoundOrInactive,
	})

	rr := executeAuth(h, "Bearer some-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// the wording must not reveal whether the account is missing or disabled
	assert.Equal(t, msgUserNotFoundOrInactive, decodeErrorResponse(t, rr).Message)
}

func TestAuth_Success_AttachesUser(t *testing.T) {
	h := newTestHandler(&fakeAuthService{
		verifyToken: models.Token{UserID: 42},
		resolveUser: activeCustomer,
	})

	nextCalled := false
	rr := executeAuth(h, "Bearer some-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true

		user, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, activeCustomer, *user)
	}))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}
