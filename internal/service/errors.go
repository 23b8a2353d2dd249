package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTokenIsExpired marks a token that verified correctly but is past
	// its expiry claim. Kept distinct from ErrTokenIsExpiredOrInvalid for
	// log precision; both reject the request the same way.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsExpiredOrInvalid is the normalised verification failure:
	// bad signature, malformed token, wrong issuer, or expired.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when a JWT cannot be issued.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUserNotFoundOrInactive is the single condition surfaced for both a
	// missing account and a deactivated one, so callers cannot tell which
	// case applied.
	ErrUserNotFoundOrInactive = errors.New("user not found or inactive")
)
