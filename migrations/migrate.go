// Package migrations embeds the goose schema migrations for the device-side
// SQLite store and for the intake server's PostgreSQL database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

const (
	clientDir = "client"
	serverDir = "server"
)

var errNilDB = errors.New("migration error: db is nil")

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// MigrateClient applies the device store schema using the sqlite3 dialect.
func MigrateClient(db *sql.DB) error {
	return migrate(db, "sqlite3", clientDir)
}

// MigrateServer applies the intake server schema using the pgx dialect.
func MigrateServer(db *sql.DB) error {
	return migrate(db, "pgx", serverDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errNilDB
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
