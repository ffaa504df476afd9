package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/field-sync/models"
)

const (
	DefaultClientDSN            = "field-sync.db"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultRateLimit            = 5.0
	DefaultSyncInterval         = 5 * time.Minute
	DefaultConnectivityInterval = 30 * time.Second
	DefaultCacheTTL             = 24 * time.Hour
)

// ClientApp holds device-level settings.
type ClientApp struct {
	Version string
	// ServiceProviderID is attached to every outbound submission and is the
	// key under which the application list is cached.
	ServiceProviderID string
	LogFile           string
}

// ClientAdapter holds network settings used by the remote service adapter.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
	RateLimit      float64
}

type ClientDB struct {
	DSN string
}

type ClientStorage struct {
	DB ClientDB
}

type ClientWorkers struct {
	SyncInterval         time.Duration
	ConnectivityInterval time.Duration
}

type ClientSync struct {
	MaxRetries int
	CacheTTL   time.Duration
}

// ClientConfig is the field device view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig merges env, flags and the JSON file, fills the defaults
// and validates the device configuration.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:           cfg.App.Version,
			ServiceProviderID: cfg.App.ServiceProviderID,
			LogFile:           cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
			RateLimit:      cfg.Adapter.RateLimit,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval:         cfg.Workers.SyncInterval,
			ConnectivityInterval: cfg.Workers.ConnectivityInterval,
		},
		Sync: ClientSync{
			MaxRetries: cfg.Sync.MaxRetries,
			CacheTTL:   cfg.Sync.CacheTTL,
		},
	}
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultClientDSN
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RateLimit == 0 {
		cfg.Adapter.RateLimit = DefaultRateLimit
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.ConnectivityInterval == 0 {
		cfg.Workers.ConnectivityInterval = DefaultConnectivityInterval
	}
	if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = models.DefaultMaxRetries
	}
	if cfg.Sync.CacheTTL == 0 {
		cfg.Sync.CacheTTL = DefaultCacheTTL
	}
}
