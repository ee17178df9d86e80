package config

import "fmt"

// ServerStorage groups the data sources of the server.
type ServerStorage struct {
	DB    DB
	Files Files
}

// ServerConfig is the server's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage ServerStorage
	Session Session
	Log     Log
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields relevant to the server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Storage: ServerStorage{
			DB:    cfg.Storage.DB,
			Files: cfg.Storage.Files,
		},
		Session: cfg.Session,
		Log:     cfg.Log,
	}
}
