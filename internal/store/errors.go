package store

import "errors"

// Sentinel errors returned by the credential store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialsNotFound is returned by Load when no complete and
	// well-formed credential record is stored. Malformed records are cleared
	// before this error is returned.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrEmptyToken is returned by Save when the token is blank.
	ErrEmptyToken = errors.New("empty session token")

	// ErrSavingCredentials is returned when the token/user pair could not be
	// written. Neither key is changed in that case.
	ErrSavingCredentials = errors.New("failed to save credentials")

	// ErrClearingCredentials is returned when the token/user pair could not
	// be removed from the database.
	ErrClearingCredentials = errors.New("failed to clear credentials")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning credential rows fails.
	ErrScanningRows = errors.New("failed to scan credential rows")
)
