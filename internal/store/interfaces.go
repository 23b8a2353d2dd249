package store

import (
	"context"

	"github.com/MKhiriev/go-shop-core/models"
)

// UserRepository is the data-access contract of the identity resolver.
type UserRepository interface {
	// FindActiveUserByID performs exactly one read against the user store
	// and returns the account matching id, provided it is active.
	// Missing and deactivated accounts both yield [ErrNoActiveUserFound].
	FindActiveUserByID(ctx context.Context, userID int64) (models.User, error)
}

// MetricArchive receives metric samples evicted from the in-process
// telemetry store so that history survives retention sweeps for offline
// analysis.
type MetricArchive interface {
	// ArchiveSamples appends the given samples to the archive. The write is
	// best-effort from the caller's perspective; failures must not affect
	// the live telemetry path.
	ArchiveSamples(ctx context.Context, samples []models.MetricSample) error

	// Close releases the underlying archive resources.
	Close() error
}

// ErrorClassificator decides whether a failed database operation hit a
// transient condition (connection loss, deadlock) or a permanent one.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
