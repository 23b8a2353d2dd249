// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// request identifiers, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-shop-core/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user snapshot in the
// context. Used together with GetUserFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, &user)
var UserCtxKey = contextKey("user")

// RequestIDCtxKey is the key under which the observer middleware stores the
// per-request identifier.
var RequestIDCtxKey = contextKey("requestID")

// GetUserFromContext retrieves the authenticated user snapshot from the
// context.
//
// Returns the *models.User and an ok flag:
//   - ok == true  — a user is attached to the request
//   - ok == false — the request is anonymous (no value, or the optional-auth
//     middleware cleared it)
//
// The returned snapshot is read-only; callers must not mutate it.
func GetUserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// GetRequestIDFromContext retrieves the request identifier assigned by the
// observer middleware, or "" when the request bypassed it.
func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDCtxKey).(string)
	return requestID
}
