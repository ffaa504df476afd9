// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/field-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// FormRepository persists form records on the device.
type FormRepository interface {
	// Upsert inserts rec or updates the record already stored for its
	// (form type, application) pair, keeping that record's id and creation
	// time. The stored row is returned with its new version.
	Upsert(ctx context.Context, rec models.FormRecord) (models.FormRecord, error)
	GetByID(ctx context.Context, id string) (models.FormRecord, error)
	GetByCompositeKey(ctx context.Context, formType models.FormType, applicationID string) (models.FormRecord, error)
	ListByStatus(ctx context.Context, formType models.FormType, statuses ...models.SyncStatus) ([]models.FormRecord, error)
	// UpdateSyncState rewrites the sync fields of a record. When
	// expectedVersion is positive the update only applies to that version and
	// ErrVersionMismatch is returned otherwise.
	UpdateSyncState(ctx context.Context, id string, expectedVersion int64, state models.SyncState) error
	Delete(ctx context.Context, id string) error
}

// SyncQueueRepository stores pending mutations, at most one per entity.
type SyncQueueRepository interface {
	Enqueue(ctx context.Context, entry models.SyncQueueEntry) (models.SyncQueueEntry, error)
	GetByEntity(ctx context.Context, entityType, entityID string) (models.SyncQueueEntry, error)
	ListByEntityType(ctx context.Context, entityType string) ([]models.SyncQueueEntry, error)
	ListAll(ctx context.Context) ([]models.SyncQueueEntry, error)
	CountByEntityType(ctx context.Context) (map[string]int, error)
	RecordAttempt(ctx context.Context, id string, errMsg string) error
	Delete(ctx context.Context, id string) error
	DeleteByEntity(ctx context.Context, entityType, entityID string) error
}

// ListCacheRepository stores rows of remote lists with an expiry.
type ListCacheRepository interface {
	GetValid(ctx context.Context, listKey string, now time.Time) ([]models.CachedListItem, error)
	PurgeExpired(ctx context.Context, listKey string, now time.Time) (int64, error)
	Upsert(ctx context.Context, items ...models.CachedListItem) error
}
