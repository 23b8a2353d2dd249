package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
)

// Storages aggregates every persistence backend used by the application.
type Storages struct {
	UserRepository UserRepository
	MetricArchive  MetricArchive

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, opens the
// sqlite metrics archive, and returns the assembled [Storages].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	archive, err := NewSQLiteMetricArchive(ctx, cfg.Archive, log)
	if err != nil {
		return nil, fmt.Errorf("error opening metric archive: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		MetricArchive:  archive,
		db:             db,
	}, nil
}

// Close releases every underlying connection. Safe to call once at process
// shutdown.
func (s *Storages) Close() error {
	var firstErr error

	if s.MetricArchive != nil {
		if err := s.MetricArchive.Close(); err != nil {
			firstErr = fmt.Errorf("error closing metric archive: %w", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("error closing database: %w", err)
		}
	}

	return firstErr
}
