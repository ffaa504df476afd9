package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/migrations"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"
)

// DB is a *sql.DB tagged with its dialect, so repositories can build queries
// with the right placeholder format and classify driver errors.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded goose migrations matching the dialect.
func (db *DB) Migrate() error {
	switch db.dialect {
	case dialectSQLite:
		return migrations.MigrateClient(db.DB)
	case dialectPostgres:
		return migrations.MigrateServer(db.DB)
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", db.dialect)
	}
}

func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == dialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (db *DB) classify(err error) ErrorKind {
	if db.errorClassificator == nil {
		return ErrorKindUnknown
	}
	return db.errorClassificator.Classify(err)
}
