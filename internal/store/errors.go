package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoActiveUserFound is returned when a user lookup matches no active
	// account. A deactivated account and a missing one are deliberately
	// indistinguishable at this level so the condition cannot be probed.
	ErrNoActiveUserFound = errors.New("no active user was found")

	// ErrBuildingSQLQuery is returned when the squirrel query builder fails
	// to produce SQL for a repository operation.
	ErrBuildingSQLQuery = errors.New("error building SQL query")

	// ErrExecutingQuery is returned when a database query fails at the
	// driver level for a reason other than an empty result.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrConnectionFailure is returned instead of [ErrExecutingQuery] when
	// the error classifier marks the driver failure as transient (connection
	// loss, deadlock rollback). The service layer surfaces it under the
	// connection error category.
	ErrConnectionFailure = errors.New("transient database failure")

	// ErrScanningRow is returned when a result row cannot be scanned into
	// the destination model.
	ErrScanningRow = errors.New("error scanning row")

	// ErrArchiveClosed is returned when samples are submitted to a metric
	// archive that has already been closed.
	ErrArchiveClosed = errors.New("metric archive is closed")
)
