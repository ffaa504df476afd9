package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: ErrorKindUnknown},
		{name: "not a pg error", err: errors.New("boom"), want: ErrorKindUnknown},
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: ErrorKindUniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("exec: %w", pgError(pgerrcode.UniqueViolation)), want: ErrorKindUniqueViolation},
		{name: "foreign key", err: pgError(pgerrcode.ForeignKeyViolation), want: ErrorKindForeignKeyViolation},
		{name: "not null", err: pgError(pgerrcode.NotNullViolation), want: ErrorKindInvalidData},
		{name: "check", err: pgError(pgerrcode.CheckViolation), want: ErrorKindInvalidData},
		{name: "invalid json", err: pgError(pgerrcode.InvalidTextRepresentation), want: ErrorKindInvalidData},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: ErrorKindUnavailable},
		{name: "serialization", err: pgError(pgerrcode.SerializationFailure), want: ErrorKindUnavailable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: ErrorKindUnavailable},
		{name: "syntax", err: pgError(pgerrcode.SyntaxError), want: ErrorKindUnknown},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestKindError(t *testing.T) {
	assert.ErrorIs(t, kindError(ErrorKindUniqueViolation), ErrDuplicateSubmission)
	assert.ErrorIs(t, kindError(ErrorKindForeignKeyViolation), ErrUnknownReference)
	assert.ErrorIs(t, kindError(ErrorKindInvalidData), ErrInvalidData)
	assert.ErrorIs(t, kindError(ErrorKindUnavailable), ErrStorageUnavailable)
	assert.ErrorIs(t, kindError(ErrorKindUnknown), ErrExecutingStatement)
}
