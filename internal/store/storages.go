package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
)

// Storages groups the intake server repositories.
type Storages struct {
	SubmissionRepository  SubmissionRepository
	ApplicationRepository ApplicationRepository

	db *DB
}

// NewStorages connects to PostgreSQL, migrates and wires the repositories.
func NewStorages(ctx context.Context, cfg config.ServerDB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		SubmissionRepository:  NewSubmissionRepository(db, logger),
		ApplicationRepository: NewApplicationRepository(db, logger),
		db:                    db,
	}, nil
}

// Ping reports whether the database answers, for the health endpoint.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
