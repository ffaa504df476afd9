package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/models"
)

type syncQueueRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSyncQueueRepository(db *DB, logger *logger.Logger) SyncQueueRepository {
	return &syncQueueRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Enqueue stores entry, or replaces the mutation already queued for the same
// entity. A replaced entry keeps its id and creation time so its place in the
// queue does not change.
func (s *syncQueueRepository) Enqueue(ctx context.Context, entry models.SyncQueueEntry) (models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)

	if entry.MaxRetries <= 0 {
		entry.MaxRetries = models.DefaultMaxRetries
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	_, err := s.DB.ExecContext(ctx, enqueueSyncEntry,
		entry.ID,
		entry.EntityType,
		entry.EntityID,
		string(entry.Operation),
		payloadText(entry.Data),
		entry.RetryCount,
		entry.MaxRetries,
		entry.Priority,
		entry.CreatedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("entity_type", entry.EntityType).
			Str("entity_id", entry.EntityID).
			Msg("failed to enqueue sync entry")
		return models.SyncQueueEntry{}, fmt.Errorf("failed to enqueue %s/%s: %w", entry.EntityType, entry.EntityID, err)
	}

	return s.GetByEntity(ctx, entry.EntityType, entry.EntityID)
}

func (s *syncQueueRepository) GetByEntity(ctx context.Context, entityType, entityID string) (models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder().
		Select(syncQueueColumns...).
		From("sync_queue").
		Where(sq.Eq{"entity_type": entityType, "entity_id": entityID}).
		ToSql()
	if err != nil {
		return models.SyncQueueEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanSyncQueueEntry(s.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncQueueEntry{}, ErrQueueEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.GetByEntity").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to get sync entry")
		return models.SyncQueueEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListByEntityType returns the queue for one entity type in processing order:
// priority first, then arrival.
func (s *syncQueueRepository) ListByEntityType(ctx context.Context, entityType string) ([]models.SyncQueueEntry, error) {
	return s.list(ctx, "syncQueueRepository.ListByEntityType", sq.Eq{"entity_type": entityType})
}

func (s *syncQueueRepository) ListAll(ctx context.Context) ([]models.SyncQueueEntry, error) {
	return s.list(ctx, "syncQueueRepository.ListAll", nil)
}

func (s *syncQueueRepository) list(ctx context.Context, funcName string, where sq.Sqlizer) ([]models.SyncQueueEntry, error) {
	log := logger.FromContext(ctx)

	q := s.builder().Select(syncQueueColumns...).From("sync_queue")
	if where != nil {
		q = q.Where(where)
	}
	query, args, err := q.OrderBy("priority DESC", "created_at ASC", "id ASC").ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing sync entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.SyncQueueEntry
	for rows.Next() {
		entry, scanErr := scanSyncQueueEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan sync entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (s *syncQueueRepository) CountByEntityType(ctx context.Context) (map[string]int, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, countSyncEntriesByEntityType)
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.CountByEntityType").Msg("failed to count sync entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			entityType string
			count      int
		)
		if err = rows.Scan(&entityType, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[entityType] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

// RecordAttempt counts a failed retryable push against the entry.
func (s *syncQueueRepository) RecordAttempt(ctx context.Context, id string, errMsg string) error {
	log := logger.FromContext(ctx)

	res, err := s.DB.ExecContext(ctx, recordSyncAttempt, s.now().UTC(), errMsg, id)
	if err != nil {
		log.Err(err).Str("func", "syncQueueRepository.RecordAttempt").Str("id", id).Msg("failed to record attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrQueueEntryNotFound
	}

	return nil
}

func (s *syncQueueRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteSyncEntry, id); err != nil {
		log.Err(err).Str("func", "syncQueueRepository.Delete").Str("id", id).Msg("failed to delete sync entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *syncQueueRepository) DeleteByEntity(ctx context.Context, entityType, entityID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, deleteSyncEntryByEntity, entityType, entityID); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.DeleteByEntity").
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("failed to delete sync entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
