package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an exchange user with the same UID
	// is already stored.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEventNotSaved is returned when appending an admin event completes
	// without an assigned index.
	ErrEventNotSaved = errors.New("admin event was not saved")

	// ErrUnsupportedDSN is returned by NewDB when the DSN is empty.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrTransient additionally marks a failed query that the backend
	// classified as retryable, e.g. a lost connection or a busy database.
	ErrTransient = errors.New("transient database error")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
