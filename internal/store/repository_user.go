package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It serves the identity resolver with single-read active-user lookups
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindActiveUserByID retrieves the user record with the given id, filtering
// on the active flag server-side. Exactly one SELECT is issued per call.
//
// Error handling:
//   - Empty result (missing OR deactivated account) → [ErrNoActiveUserFound].
//     The two cases are collapsed on purpose: callers must not be able to
//     tell which one applied.
//   - Builder failure → wrapped [ErrBuildingSQLQuery].
//   - Any other driver-level error → wrapped [ErrExecutingQuery]; the
//     classifier result is logged to separate transient from permanent
//     failures.
func (r *userRepository) FindActiveUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("user_id", "email", "first_name", "last_name", "role", "active", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"active": true}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindActiveUserByID").Msg("error building user lookup query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.UserID, &user.Email, &user.FirstName, &user.LastName, &user.Role, &user.Active, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoActiveUserFound
		}

		classification := r.db.errorClassificator.Classify(err)
		log.Err(err).
			Str("func", "*userRepository.FindActiveUserByID").
			Int64("user_id", userID).
			Int("classification", int(classification)).
			Msg("error executing user lookup")

		if classification == Retryable {
			return models.User{}, fmt.Errorf("%w: %w", ErrConnectionFailure, err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
