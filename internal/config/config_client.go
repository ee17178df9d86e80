package config

import (
	"fmt"
)

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Cache holds the durable cache settings.
	Cache Cache
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App App
	// Adapter contains the server address and outbound timeout.
	Adapter Adapter
	// Storage contains durable cache settings.
	Storage ClientStorage
	// Session contains cookie lifetime and landing path.
	Session Session
	// Log contains logging settings.
	Log Log
	// UI contains terminal client settings.
	UI UI
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: ClientStorage{
			Cache: cfg.Storage.Cache,
		},
		Session: cfg.Session,
		Log:     cfg.Log,
		UI:      cfg.UI,
	}
}
