package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(defaults())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{
			name:    "sqlite without dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Cache.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sqlite in memory",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Cache.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "redis with address",
			mutate: func(cfg *ClientConfig) {
				cfg.Storage.Cache.Backend = CacheBackendRedis
				cfg.Storage.Cache.RedisAddress = "localhost:6379"
			},
		},
		{
			name:    "redis without address",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Cache.Backend = CacheBackendRedis },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.Cache.Backend = "memcached" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no server address",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero cookie ttl",
			mutate:  func(cfg *ClientConfig) { cfg.Session.CookieTTL = 0 },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "negative cookie ttl",
			mutate:  func(cfg *ClientConfig) { cfg.Session.CookieTTL = -time.Second },
			wantErr: ErrInvalidSessionConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := NewServerConfig(defaults())
	assert.NoError(t, cfg.validate())

	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestNewServerConfig_MapsFields(t *testing.T) {
	src := defaults()
	src.Storage.DB.DSN = "postgres://x"
	src.Storage.Files.UsersFile = "users.json"

	cfg := NewServerConfig(src)

	assert.Equal(t, "postgres://x", cfg.Storage.DB.DSN)
	assert.Equal(t, "users.json", cfg.Storage.Files.UsersFile)
	assert.Equal(t, src.Server, cfg.Server)
}
