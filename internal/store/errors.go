package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAppNotFound is returned when a query targets an app that does not
	// exist in the caller's tenant.
	ErrAppNotFound = errors.New("app was not found")

	// ErrAPITokenNotFound is returned when an API key lookup or deletion
	// targets a key that does not exist for the given resource.
	ErrAPITokenNotFound = errors.New("api token was not found")

	// ErrAdvertisingNotFound is returned when a query targets a banner that
	// does not exist.
	ErrAdvertisingNotFound = errors.New("advertising was not found")

	// ErrTagNotFound is returned when a query targets a tag that does not
	// exist in the caller's tenant.
	ErrTagNotFound = errors.New("tag was not found")

	// ErrTagBindingNotFound is returned when a binding deletion targets a
	// (tag_id, target_id) pair that does not exist.
	ErrTagBindingNotFound = errors.New("tag binding was not found")

	// ErrConversationNotFound is returned when a lookup, rename, or deletion
	// targets a conversation that does not exist for the given app.
	ErrConversationNotFound = errors.New("conversation was not found")

	// ErrLastConversationNotFound is returned when the last_id cursor of a
	// conversation list request references a conversation that does not exist.
	ErrLastConversationNotFound = errors.New("last conversation was not found")

	// ErrTargetNotFound is returned when a tag binding references a target
	// resource (app or dataset) that does not exist in the caller's tenant.
	ErrTargetNotFound = errors.New("binding target was not found")

	// ErrDefaultAppNotSet is returned by the default-app cache when no app
	// has been pinned as the workspace default.
	ErrDefaultAppNotSet = errors.New("default app is not set")

	// ErrTagBindingExists is returned when a binding insert collides with an
	// existing (tag_id, target_id) pair. Happens only under concurrent
	// requests; the service layer checks existence first.
	ErrTagBindingExists = errors.New("tag binding already exists")

	// ErrDuplicateAPIToken is returned when a generated key collides with an
	// existing token value.
	ErrDuplicateAPIToken = errors.New("api token already exists")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
