package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrFormRecordNotFound is returned when no form record matches the id or
	// the (form type, application) pair.
	ErrFormRecordNotFound = errors.New("form record was not found")

	// ErrVersionMismatch is returned by a conditional sync state update when
	// the record was saved again after the version the caller holds.
	ErrVersionMismatch = errors.New("form record version mismatch")

	ErrQueueEntryNotFound = errors.New("sync queue entry was not found")

	ErrApplicationNotFound = errors.New("application was not found")

	// ErrDuplicateSubmission is returned when another record already holds the
	// (form type, application) slot on the intake server.
	ErrDuplicateSubmission = errors.New("duplicate form submission")

	// ErrUnknownReference is returned on a foreign key violation.
	ErrUnknownReference = errors.New("submission references an unknown entity")

	ErrInvalidData = errors.New("submission data rejected by storage")

	// ErrStorageUnavailable marks a failure that may go away on retry.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)

// kindError converts a classified driver error into the matching sentinel.
func kindError(kind ErrorKind) error {
	switch kind {
	case ErrorKindUniqueViolation:
		return ErrDuplicateSubmission
	case ErrorKindForeignKeyViolation:
		return ErrUnknownReference
	case ErrorKindInvalidData:
		return ErrInvalidData
	case ErrorKindUnavailable:
		return ErrStorageUnavailable
	default:
		return ErrExecutingStatement
	}
}
