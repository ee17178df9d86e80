package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

const (
	loadCacheValue = `SELECT value FROM kv_store WHERE key = ?;`

	saveCacheValue = `INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP;`

	deleteCacheValue = `DELETE FROM kv_store WHERE key = ?;`
)

// sqliteCache is the durable [Cache] kept in the kv_store table of a local
// SQLite file.
type sqliteCache struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteCache constructs a [Cache] over an opened SQLite database.
func NewSQLiteCache(db *DB, log *logger.Logger) Cache {
	return &sqliteCache{db: db, logger: log}
}

func (c *sqliteCache) Load(ctx context.Context, key string) (string, error) {
	var value string
	err := c.db.QueryRowContext(ctx, loadCacheValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrCacheMiss
	}
	if err != nil {
		c.logger.Err(err).Str("func", "*sqliteCache.Load").Str("key", key).Msg("error loading value")
		return "", fmt.Errorf("%w: %w", ErrCacheRead, err)
	}
	return value, nil
}

func (c *sqliteCache) Save(ctx context.Context, key, value string) error {
	if _, err := c.db.ExecContext(ctx, saveCacheValue, key, value); err != nil {
		c.logger.Err(err).Str("func", "*sqliteCache.Save").Str("key", key).Msg("error saving value")
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}

func (c *sqliteCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, deleteCacheValue, key); err != nil {
		c.logger.Err(err).Str("func", "*sqliteCache.Delete").Str("key", key).Msg("error deleting value")
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}
