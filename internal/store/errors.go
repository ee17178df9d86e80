package store

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrReadingDataFile      = errors.New("error reading data file")
	ErrDecodingDataFile     = errors.New("error decoding data file")
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing query")
	ErrScanningRow          = errors.New("error scanning row")
	ErrIteratingRows        = errors.New("error iterating rows")
	ErrDirectoryNotMigrated = errors.New("directory tables are missing")
)

var (
	// ErrCacheMiss is returned by [Cache.Load] when the key is absent.
	ErrCacheMiss = errors.New("cache miss")

	ErrCacheRead           = errors.New("error reading cache")
	ErrCacheWrite          = errors.New("error writing cache")
	ErrUnknownCacheBackend = errors.New("unknown cache backend")
	ErrInvalidCookieURL    = errors.New("invalid cookie url")
)
