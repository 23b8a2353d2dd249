package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/utils"
)

// optionalAuth is the fail-open variant of the authentication middleware.
//
// It walks the same token-extraction, verification and resolution path as
// [Handler.auth], but any failure (missing token, malformed header, invalid
// or expired token, user not found or inactive) leaves the request anonymous
// and continues the pipeline instead of rejecting. This mode never writes an
// error response; it only enriches the context when it can.
//
// The asymmetry with the mandatory gate is intentional: public endpoints
// that behave differently for logged-in callers must not be blocked by a
// stale or malformed token.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("optional auth: malformed header, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("optional auth: token rejected, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.ResolveUser(ctx, token.UserID)
		if err != nil {
			log.Debug().Err(err).Msg("optional auth: user not resolved, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
