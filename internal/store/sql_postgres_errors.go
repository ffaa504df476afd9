package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind is the storage-level category of a failed statement.
type ErrorKind int

const (
	// ErrorKindUnknown covers errors the classifier has no rule for.
	ErrorKindUnknown ErrorKind = iota
	ErrorKindUniqueViolation
	ErrorKindForeignKeyViolation
	// ErrorKindInvalidData covers class 22 and the non-key class 23 codes.
	ErrorKindInvalidData
	// ErrorKindUnavailable may succeed if attempted again.
	ErrorKindUnavailable
)

type ErrorClassificator interface {
	Classify(err error) ErrorKind
}

// PostgresErrorClassifier maps pgconn error codes to an [ErrorKind].
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorKind {
	if err == nil {
		return ErrorKindUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return ErrorKindUnknown
}

// ClassifyPgError maps a *pgconn.PgError by code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
func ClassifyPgError(pgErr *pgconn.PgError) ErrorKind {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ErrorKindUniqueViolation

	case pgerrcode.ForeignKeyViolation:
		return ErrorKindForeignKeyViolation

	// Class 23, the rest
	case pgerrcode.IntegrityConstraintViolation,
		pgerrcode.RestrictViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation:
		return ErrorKindInvalidData

	// Class 40
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return ErrorKindUnavailable

	// Class 57
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return ErrorKindUnavailable
	}

	if pgerrcode.IsConnectionException(pgErr.Code) {
		return ErrorKindUnavailable
	}

	if pgerrcode.IsDataException(pgErr.Code) {
		return ErrorKindInvalidData
	}

	return ErrorKindUnknown
}
