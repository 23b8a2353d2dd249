package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/models"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const createArchiveSchema = `CREATE TABLE IF NOT EXISTS metric_samples (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    endpoint      TEXT NOT NULL,
    method        TEXT NOT NULL,
    status_code   INTEGER NOT NULL,
    duration_ms   INTEGER NOT NULL,
    recorded_at   TIMESTAMP NOT NULL,
    error_message TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_metric_samples_recorded_at ON metric_samples (recorded_at);`

// sqliteMetricArchive is the sqlite-backed implementation of [MetricArchive].
// It receives batches of metric samples evicted by the retention sweeper and
// appends them to a local file so that request history remains available for
// offline analysis after the in-process window has moved on.
type sqliteMetricArchive struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
	logger *logger.Logger
}

// NewSQLiteMetricArchive opens (creating if necessary) the sqlite archive at
// cfg.Path and ensures the schema exists. An empty path opens an in-memory
// archive, useful for tests.
func NewSQLiteMetricArchive(ctx context.Context, cfg config.Archive, log *logger.Logger) (MetricArchive, error) {
	dsn := cfg.Path
	if dsn == "" {
		dsn = ":memory:"
	}

	if dsn != ":memory:" {
		if err := createArchiveFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewSQLiteMetricArchive").Msg("error creating archive file")
			return nil, fmt.Errorf("error creating archive file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteMetricArchive").Msg("error opening archive database")
		return nil, fmt.Errorf("error opening archive database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteMetricArchive").Msg("error connecting archive database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, createArchiveSchema); err != nil {
		log.Err(err).Str("func", "NewSQLiteMetricArchive").Msg("error creating archive schema")
		return nil, fmt.Errorf("error creating archive schema: %w", err)
	}

	log.Debug().Str("func", "NewSQLiteMetricArchive").Str("path", dsn).Msg("metric archive ready")

	return &sqliteMetricArchive{
		db:     conn,
		logger: log,
	}, nil
}

// ArchiveSamples appends the given samples in a single transaction.
// A nil or empty batch is a no-op.
func (a *sqliteMetricArchive) ArchiveSamples(ctx context.Context, samples []models.MetricSample) error {
	if len(samples) == 0 {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrArchiveClosed
	}

	builder := sq.Insert("metric_samples").
		Columns("endpoint", "method", "status_code", "duration_ms", "recorded_at", "error_message")
	for _, sample := range samples {
		builder = builder.Values(sample.Endpoint, sample.Method, sample.StatusCode, sample.DurationMs, sample.Timestamp, sample.ErrorMessage)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	a.logger.Debug().Int("count", len(samples)).Msg("archived evicted metric samples")

	return nil
}

// Close closes the underlying sqlite connection. Subsequent ArchiveSamples
// calls return [ErrArchiveClosed].
func (a *sqliteMetricArchive) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	return a.db.Close()
}

func createArchiveFileIfNotExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	return file.Close()
}
