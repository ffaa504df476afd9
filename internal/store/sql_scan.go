package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/MKhiriev/field-sync/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFormRecord(row rowScanner) (models.FormRecord, error) {
	var (
		rec             models.FormRecord
		formType        string
		payload         []byte
		lastSyncAttempt sql.NullTime
		syncError       sql.NullString
	)

	err := row.Scan(
		&rec.ID,
		&formType,
		&rec.ApplicationID,
		&payload,
		&rec.SyncStatus,
		&rec.SyncAttempts,
		&lastSyncAttempt,
		&syncError,
		&rec.Version,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return models.FormRecord{}, err
	}

	rec.FormType = models.FormType(formType)
	rec.Payload = json.RawMessage(payload)
	rec.LastSyncAttempt = timePtr(lastSyncAttempt)
	rec.SyncError = stringPtr(syncError)

	return rec, nil
}

func scanSyncQueueEntry(row rowScanner) (models.SyncQueueEntry, error) {
	var (
		entry        models.SyncQueueEntry
		operation    string
		data         []byte
		lastAttempt  sql.NullTime
		errorMessage sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.EntityType,
		&entry.EntityID,
		&operation,
		&data,
		&entry.RetryCount,
		&entry.MaxRetries,
		&entry.Priority,
		&entry.CreatedAt,
		&lastAttempt,
		&errorMessage,
	)
	if err != nil {
		return models.SyncQueueEntry{}, err
	}

	entry.Operation = models.Operation(operation)
	entry.Data = json.RawMessage(data)
	entry.LastAttempt = timePtr(lastAttempt)
	entry.ErrorMessage = stringPtr(errorMessage)

	return entry, nil
}

func scanCachedListItem(row rowScanner) (models.CachedListItem, error) {
	var (
		item models.CachedListItem
		data []byte
	)

	if err := row.Scan(&item.ListKey, &item.ItemID, &data, &item.CachedAt, &item.CacheExpiry); err != nil {
		return models.CachedListItem{}, err
	}
	item.Data = json.RawMessage(data)

	return item, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullableTime returns the UTC value of t or nil. Timestamps are always
// written in UTC so that the text encoding used by sqlite orders correctly.
func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func payloadText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	return string(raw)
}
