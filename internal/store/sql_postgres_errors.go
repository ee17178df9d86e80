package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err is not a
// PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// classifyQueryError maps a failed query to a package sentinel.
//
//   - Class 42 undefined_table → [ErrDirectoryNotMigrated]
//   - everything else          → [ErrExecutingQuery]
func classifyQueryError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UndefinedTable:
		return fmt.Errorf("%w: %w", ErrDirectoryNotMigrated, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
