package store

import (
	"database/sql"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// DB wraps a database connection pool together with the logger of the
// component that opened it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Close closes the underlying pool.
func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	db.logger.Debug().Str("func", "*DB.Close").Msg("closing database")
	return db.DB.Close()
}
