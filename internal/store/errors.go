package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCustomerNotFound is returned when no customer matches the lookup key
	// or the row targeted by an update or delete is absent.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrEmailAlreadyExists is returned when an insert or update violates the
	// unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrCustomerHasPendingPackages is returned when a delete is refused
	// because a package that is not yet delivered references the customer.
	ErrCustomerHasPendingPackages = errors.New("customer has pending packages")

	// ErrNothingToUpdate is returned by UpdateProfile for an empty update.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
