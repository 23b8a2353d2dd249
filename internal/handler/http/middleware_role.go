package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-core/internal/utils"
	"github.com/MKhiriev/go-shop-core/models"
)

// User-facing wordings used by the role gate.
const (
	msgUnauthorizedAccess      = "unauthorized access"
	msgInsufficientPermissions = "insufficient permissions"
)

// requireRole builds a role-gating middleware for the given allow-set.
//
// It expects the request context to already carry an authenticated user
// (i.e. it must be mounted behind [Handler.auth]); an anonymous request is
// rejected with 401. A caller whose role is outside the allow-set is
// rejected with 403 even when their token is perfectly valid.
//
// The check is a pure set-membership test. There is no role hierarchy and
// no inheritance between roles.
func (h *Handler) requireRole(allowedRoles ...models.Role) func(next http.Handler) http.Handler {
	allowSet := make(map[models.Role]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				h.respondErrorStatus(w, r, http.StatusUnauthorized, msgUnauthorizedAccess, nil)
				return
			}

			if _, allowed := allowSet[user.Role]; !allowed {
				h.respondErrorStatus(w, r, http.StatusForbidden, msgInsufficientPermissions, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
