package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/store"
	"github.com/MKhiriev/go-shop-core/internal/utils"
	"github.com/MKhiriev/go-shop-core/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It verifies JWT tokens with HMAC-SHA256 and resolves verified claims to
// active user records via a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// verification.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// VerifyToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and expiry. Validation failures are normalised so that
// callers do not need to inspect low-level JWT errors:
//   - an expired-but-otherwise-valid token → ErrTokenIsExpired
//   - every other failure (bad signature, malformed, wrong issuer)
//     → ErrTokenIsExpiredOrInvalid
//
// The check performs no I/O.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Msg("token verification failed: expired")
			return models.Token{}, ErrTokenIsExpired
		}

		log.Debug().Err(err).Msg("token verification failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveUser fetches the current account record for a verified identity
// claim and confirms it is active. Exactly one repository read is issued.
//
// Both a missing account and a deactivated one are surfaced as
// ErrUserNotFoundOrInactive so that the two cases cannot be told apart at
// the API boundary. Store-level failures are passed through wrapped, keeping
// their sentinels matchable for error-category mapping.
func (a *authService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindActiveUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveUserFound) {
			log.Debug().Int64("user_id", userID).Msg("user not found or inactive")
			return models.User{}, ErrUserNotFoundOrInactive
		}

		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
