package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/models"
)

type formRepository struct {
	*DB
	logger *logger.Logger
}

func NewFormRepository(db *DB, logger *logger.Logger) FormRepository {
	return &formRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *formRepository) Upsert(ctx context.Context, rec models.FormRecord) (models.FormRecord, error) {
	log := logger.FromContext(ctx)

	status, err := rec.SyncStatus.Value()
	if err != nil {
		return models.FormRecord{}, err
	}

	_, err = f.DB.ExecContext(ctx, upsertFormRecord,
		rec.ID,
		string(rec.FormType),
		rec.ApplicationID,
		payloadText(rec.Payload),
		status,
		rec.SyncAttempts,
		nullableTime(rec.LastSyncAttempt),
		nullableString(rec.SyncError),
		rec.CreatedAt.UTC(),
		rec.UpdatedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "formRepository.Upsert").
			Str("form_type", string(rec.FormType)).
			Str("application_id", rec.ApplicationID).
			Msg("failed to upsert form record")
		return models.FormRecord{}, fmt.Errorf("failed to upsert form record (%s/%s): %w", rec.FormType, rec.ApplicationID, err)
	}

	// sqlite reports no declared types for RETURNING columns, so the stored
	// row is read back with a plain select
	return f.GetByCompositeKey(ctx, rec.FormType, rec.ApplicationID)
}

func (f *formRepository) GetByID(ctx context.Context, id string) (models.FormRecord, error) {
	log := logger.FromContext(ctx)

	rec, err := scanFormRecord(f.DB.QueryRowContext(ctx, getFormRecordByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.FormRecord{}, ErrFormRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "formRepository.GetByID").
			Str("id", id).
			Msg("failed to get form record")
		return models.FormRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (f *formRepository) GetByCompositeKey(ctx context.Context, formType models.FormType, applicationID string) (models.FormRecord, error) {
	log := logger.FromContext(ctx)

	row := f.DB.QueryRowContext(ctx, getFormRecordByCompositeKey, string(formType), applicationID)
	rec, err := scanFormRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FormRecord{}, ErrFormRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "formRepository.GetByCompositeKey").
			Str("form_type", string(formType)).
			Str("application_id", applicationID).
			Msg("failed to get form record")
		return models.FormRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

// ListByStatus returns records of formType in the given statuses, oldest
// update first. An empty formType or no statuses disables that filter.
func (f *formRepository) ListByStatus(ctx context.Context, formType models.FormType, statuses ...models.SyncStatus) ([]models.FormRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFormRecordsQuery(f.builder(), formType, statuses)
	if err != nil {
		log.Err(err).Str("func", "formRepository.ListByStatus").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formRepository.ListByStatus").
			Str("form_type", string(formType)).
			Msg("failed to execute query for listing form records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.FormRecord
	for rows.Next() {
		rec, scanErr := scanFormRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "formRepository.ListByStatus").Msg("failed to scan form record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "formRepository.ListByStatus").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (f *formRepository) UpdateSyncState(ctx context.Context, id string, expectedVersion int64, state models.SyncState) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSyncStateQuery(f.builder(), id, expectedVersion, state)
	if err != nil {
		log.Err(err).Str("func", "formRepository.UpdateSyncState").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := f.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "formRepository.UpdateSyncState").
			Str("id", id).
			Msg("failed to update sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	var count int
	if err = f.DB.QueryRowContext(ctx, existsFormRecord, id).Scan(&count); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if count == 0 {
		return ErrFormRecordNotFound
	}

	log.Debug().
		Str("func", "formRepository.UpdateSyncState").
		Str("id", id).
		Int64("expected_version", expectedVersion).
		Msg("record was saved again, sync state not applied")
	return ErrVersionMismatch
}

func (f *formRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := f.DB.ExecContext(ctx, deleteFormRecord, id); err != nil {
		log.Err(err).Str("func", "formRepository.Delete").Str("id", id).Msg("failed to delete form record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func buildListFormRecordsQuery(b sq.StatementBuilderType, formType models.FormType, statuses []models.SyncStatus) (string, []any, error) {
	q := b.Select(formRecordColumns...).From("form_records")

	if formType != "" {
		q = q.Where(sq.Eq{"form_type": string(formType)})
	}
	if len(statuses) > 0 {
		names := make([]string, 0, len(statuses))
		for _, s := range statuses {
			names = append(names, s.String())
		}
		q = q.Where(sq.Eq{"sync_status": names})
	}

	return q.OrderBy("updated_at ASC", "id ASC").ToSql()
}

func buildUpdateSyncStateQuery(b sq.StatementBuilderType, id string, expectedVersion int64, state models.SyncState) (string, []any, error) {
	if !state.SyncStatus.Valid() {
		return "", nil, fmt.Errorf("%w: %d", models.ErrUnknownSyncStatus, uint8(state.SyncStatus))
	}

	q := b.Update("form_records").
		Set("sync_status", state.SyncStatus.String()).
		Set("sync_attempts", state.SyncAttempts).
		Set("last_sync_attempt", nullableTime(state.LastSyncAttempt)).
		Set("sync_error", nullableString(state.SyncError)).
		Where(sq.Eq{"id": id})

	if expectedVersion > 0 {
		q = q.Where(sq.Eq{"version": expectedVersion})
	}

	return q.ToSql()
}
