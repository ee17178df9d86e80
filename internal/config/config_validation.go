// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the settings both binaries rely on.
func (cfg *StructuredConfig) validate() error {
	if !strings.HasPrefix(cfg.Session.LandingPath, "/") && cfg.Session.LandingPath != "" {
		return fmt.Errorf("%w: landing path %q must start with /", ErrInvalidSessionConfigs, cfg.Session.LandingPath)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Cache.Backend {
	case CacheBackendSQLite:
		if cfg.Storage.Cache.DSN == "" || strings.Contains(cfg.Storage.Cache.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	case CacheBackendRedis:
		if cfg.Storage.Cache.RedisAddress == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidStorageConfigs, cfg.Storage.Cache.Backend)
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.CookieTTL <= 0 || cfg.Session.LandingPath == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}
