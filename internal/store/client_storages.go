package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
)

// ClientStorages groups the device repositories that share one SQLite file.
type ClientStorages struct {
	FormRepository      FormRepository
	SyncQueueRepository SyncQueueRepository
	ListCacheRepository ListCacheRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, applies the
// client migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		FormRepository:      NewFormRepository(db, logger),
		SyncQueueRepository: NewSyncQueueRepository(db, logger),
		ListCacheRepository: NewListCacheRepository(db, logger),
		db:                  db,
	}
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
