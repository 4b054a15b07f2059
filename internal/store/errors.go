package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCharacterAlreadyExists is returned when a character with the same
	// (username, snake_name) key is already persisted.
	ErrCharacterAlreadyExists = errors.New("character already exists")

	// ErrCharacterNotFound is returned when no row matches the requested
	// (username, snake_name) key.
	ErrCharacterNotFound = errors.New("character was not found")

	// ErrCharacterLocked is returned when an update tries to change the
	// spells of a locked character without unlocking it.
	ErrCharacterLocked = errors.New("character is locked")

	// ErrInMemoryDSN is returned when an in-memory SQLite database is requested.
	ErrInMemoryDSN = errors.New("in-memory database is not supported")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the gateway verbs when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrAcquiringConnection is returned when no connection to the database
	// could be opened.
	ErrAcquiringConnection = errors.New("error acquiring database connection")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrUniqueViolation is returned when a statement violates a primary key
	// or unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrNoRows is returned by [DB.QueryOne] when the query matched nothing.
	ErrNoRows = errors.New("no rows in result set")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)

// ErrorClassification is the result of [ErrorClassifier.Classify].
type ErrorClassification int

const (
	// Unclassified is any driver error with no special meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a primary key or unique constraint violation.
	UniqueViolation

	// ConnectionFailure means the database could not be reached or was busy.
	ConnectionFailure
)

// ErrorClassifier maps dialect-specific driver errors to an
// [ErrorClassification].
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}
