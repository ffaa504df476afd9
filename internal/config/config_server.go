package config

import (
	"fmt"
	"time"
)

const DefaultTokenDuration = 30 * 24 * time.Hour

type ServerApp struct {
	Version string
}

type ServerHTTP struct {
	Address        string
	RequestTimeout time.Duration
}

type ServerDB struct {
	DSN string
}

type ServerAuth struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerConfig is the intake server view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	HTTP    ServerHTTP
	Storage ServerDB
	Auth    ServerAuth
}

// GetServerConfig merges env, the parsed flags and the JSON file into a
// validated [ServerConfig].
func GetServerConfig(flags *StructuredConfig) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{Version: cfg.App.Version},
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerDB{DSN: cfg.Storage.DB.DSN},
		Auth: ServerAuth{
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenDuration: cfg.Auth.TokenDuration,
		},
	}

	if serverCfg.HTTP.RequestTimeout == 0 {
		serverCfg.HTTP.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.Auth.TokenDuration == 0 {
		serverCfg.Auth.TokenDuration = DefaultTokenDuration
	}

	return serverCfg, serverCfg.validate()
}
