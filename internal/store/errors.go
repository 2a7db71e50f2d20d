package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when the requested row does not exist or is
	// owned by another user.
	ErrNotFound = errors.New("record was not found")

	// ErrAlreadyExists is returned on a unique constraint violation
	// (e.g. a second account with the same email).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrVaultChanged is returned when a password change does not carry
	// exactly the user's current vault items.
	ErrVaultChanged = errors.New("vault items changed during re-encryption")

	// ErrUnavailable marks errors the database classifier considers
	// transient (connection loss, deadlock, busy database).
	ErrUnavailable = errors.New("database temporarily unavailable")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
