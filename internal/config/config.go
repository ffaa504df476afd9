// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the union of every setting either binary understands.
// It is what env, flags and JSON are decoded into before being projected into
// [ClientConfig] or [ServerConfig].
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	Storage Storage `envPrefix:"STORAGE_"`

	Server Server `envPrefix:"SERVER_"`

	Adapter Adapter `envPrefix:"ADAPTER_"`

	Auth Auth `envPrefix:"AUTH_"`

	Workers Workers `envPrefix:"WORKERS_"`

	Sync Sync `envPrefix:"SYNC_"`

	JSONFilePath string `env:"CONFIG"`
}

type App struct {
	Version string `env:"VERSION"`

	// ServiceProviderID correlates every submission with the provider the
	// device works for. The client refuses to start without it.
	ServiceProviderID string `env:"SERVICE_PROVIDER_ID"`

	LogFile string `env:"LOG_FILE"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`
}

type DB struct {
	DSN string `env:"DATABASE_URI"`
}

type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Adapter struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	Token string `env:"TOKEN"`

	// RateLimit caps outbound requests per second.
	RateLimit float64 `env:"RATE_LIMIT"`
}

type Auth struct {
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	TokenIssuer string `env:"TOKEN_ISSUER"`

	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

type Workers struct {
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	ConnectivityInterval time.Duration `env:"CONNECTIVITY_INTERVAL"`
}

type Sync struct {
	MaxRetries int `env:"MAX_RETRIES"`

	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// GetStructuredConfig assembles the configuration from the environment, the
// already parsed flags and the optional JSON file.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
