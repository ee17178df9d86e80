package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
)

// ClientStorages groups the client caches and the shared cookie jar.
type ClientStorages struct {
	// Durable survives restarts of the client.
	Durable Cache
	// Cookie lives in Jar and is sent to the server with every request.
	Cookie Cache
	Jar    http.CookieJar

	closeFn func() error
}

// NewClientStorages opens the configured durable backend ("sqlite" or
// "redis") and builds the cookie store for the adapter address.
func NewClientStorages(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*ClientStorages, error) {
	jar, err := NewCookieJar()
	if err != nil {
		log.Err(err).Str("func", "NewClientStorages").Msg("error creating cookie jar")
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	cookie, err := NewCookieStore(jar, cfg.Adapter.HTTPAddress, cfg.Session.CookieTTL, log)
	if err != nil {
		return nil, err
	}

	storages := &ClientStorages{Cookie: cookie, Jar: jar}

	switch cfg.Storage.Cache.Backend {
	case config.CacheBackendSQLite, "":
		db, dbErr := NewConnectSQLite(ctx, cfg.Storage.Cache.DSN, log)
		if dbErr != nil {
			return nil, dbErr
		}
		storages.Durable = NewSQLiteCache(db, log)
		storages.closeFn = db.Close
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Cache.RedisAddress,
			Password: cfg.Storage.Cache.RedisPassword,
			DB:       cfg.Storage.Cache.RedisDB,
		})
		if pingErr := client.Ping(ctx).Err(); pingErr != nil {
			log.Err(pingErr).Str("func", "NewClientStorages").Msg("error connecting redis")
			_ = client.Close()
			return nil, fmt.Errorf("error connecting redis: %w", pingErr)
		}
		storages.Durable = NewRedisCache(client, log)
		storages.closeFn = client.Close
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, cfg.Storage.Cache.Backend)
	}

	log.Debug().Str("func", "NewClientStorages").Str("backend", cfg.Storage.Cache.Backend).Msg("client storages ready")
	return storages, nil
}

// Close releases the durable backend.
func (s *ClientStorages) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
