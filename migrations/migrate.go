// Package migrations holds the embedded goose migrations of the server
// database (PostgreSQL) and of the client durable cache (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies the server migrations (users and products tables).
func Migrate(db *sql.DB) error {
	return migrate(db, postgresMigrations, "pgx", "postgres")
}

// MigrateSQLite applies the client durable cache migrations.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, sqliteMigrations, "sqlite3", "sqlite")
}

func migrate(db *sql.DB, fsys fs.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
