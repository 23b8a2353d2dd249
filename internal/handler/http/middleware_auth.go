package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/service"
	"github.com/MKhiriev/go-shop-core/internal/utils"
)

// User-facing wordings used by the authentication boundary. The resolve
// failure uses a single wording for both "not found" and "inactive" so
// callers cannot probe which accounts exist.
const (
	msgAuthenticationRequired = "authentication required"
	msgTokenInvalidOrExpired  = "token is invalid or expired"
	msgUserNotFoundOrInactive = "user not found or inactive"
)

// auth is the mandatory authentication middleware.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.VerifyToken], resolves the claimed subject to an
// active user via [service.AuthService.ResolveUser], and attaches the user
// snapshot to the request context under [utils.UserCtxKey] before delegating
// to the next handler.
//
// The middleware fails closed:
//   - missing or malformed "Authorization" header → 401
//   - invalid or expired token → 403
//   - token valid but user missing or deactivated → 401, with wording that
//     does not reveal which of the two applied
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.respondErrorStatus(w, r, http.StatusUnauthorized, msgAuthenticationRequired, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			h.respondErrorStatus(w, r, http.StatusUnauthorized, msgAuthenticationRequired, err)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Debug().Msg("rejecting expired token")
			}
			h.respondErrorStatus(w, r, http.StatusForbidden, msgTokenInvalidOrExpired, err)
			return
		}

		user, err := h.services.AuthService.ResolveUser(ctx, token.UserID)
		if err != nil {
			h.respondErrorStatus(w, r, http.StatusUnauthorized, msgUserNotFoundOrInactive, err)
			return
		}

		// Attach the resolved snapshot so downstream handlers can read the
		// caller without a second lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, &user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
