package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// user fails because a user with the same username already exists.
	// The uniqueness is enforced by a unique index, so two concurrent
	// signups with the same name cannot both succeed.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSheetNotFound is returned when an update targets a sheet
	// (identified by sheet_id AND user_id) that does not exist in the
	// database. An ownership mismatch and an absent id are indistinguishable
	// on purpose: the combined predicate is the authorization check.
	ErrSheetNotFound = errors.New("sheet was not found")

	// ErrSheetNotSaved is returned when an INSERT completes without error
	// but no row was actually persisted.
	ErrSheetNotSaved = errors.New("sheet was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
