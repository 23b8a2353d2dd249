package service

import (
	"context"

	"github.com/MKhiriev/go-shop-core/models"
)

// AuthService composes the credential verifier and the identity resolver
// used by the authentication middleware.
type AuthService interface {
	// VerifyToken validates a raw JWT string (signature, issuer, expiry)
	// and returns the extracted identity claim. Purely computational.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveUser fetches the current user record for a verified claim and
	// confirms the account is active. Performs exactly one store read.
	ResolveUser(ctx context.Context, userID int64) (models.User, error)

	// CreateToken issues a signed JWT for the given user. Used by the
	// external login endpoint and by tests.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}
