// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

var formRecordColumns = []string{
	"id",
	"form_type",
	"application_id",
	"payload",
	"sync_status",
	"sync_attempts",
	"last_sync_attempt",
	"sync_error",
	"version",
	"created_at",
	"updated_at",
}

var syncQueueColumns = []string{
	"id",
	"entity_type",
	"entity_id",
	"operation",
	"data",
	"retry_count",
	"max_retries",
	"priority",
	"created_at",
	"last_attempt",
	"error_message",
}

const (
	upsertFormRecord = `
		INSERT INTO form_records (
			id,
			form_type,
			application_id,
			payload,
			sync_status,
			sync_attempts,
			last_sync_attempt,
			sync_error,
			version,
			created_at,
			updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT (form_type, application_id) DO UPDATE SET
			payload           = excluded.payload,
			sync_status       = excluded.sync_status,
			sync_attempts     = excluded.sync_attempts,
			last_sync_attempt = excluded.last_sync_attempt,
			sync_error        = excluded.sync_error,
			version           = form_records.version + 1,
			updated_at        = excluded.updated_at;`

	getFormRecordByID = `
		SELECT
			id, form_type, application_id, payload, sync_status, sync_attempts,
			last_sync_attempt, sync_error, version, created_at, updated_at
		FROM form_records
		WHERE id = ?;`

	getFormRecordByCompositeKey = `
		SELECT
			id, form_type, application_id, payload, sync_status, sync_attempts,
			last_sync_attempt, sync_error, version, created_at, updated_at
		FROM form_records
		WHERE form_type = ? AND application_id = ?;`

	existsFormRecord = `SELECT COUNT(1) FROM form_records WHERE id = ?;`

	deleteFormRecord = `DELETE FROM form_records WHERE id = ?;`

	enqueueSyncEntry = `
		INSERT INTO sync_queue (
			id,
			entity_type,
			entity_id,
			operation,
			data,
			retry_count,
			max_retries,
			priority,
			created_at,
			last_attempt,
			error_message
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, NULL)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			operation     = excluded.operation,
			data          = excluded.data,
			retry_count   = excluded.retry_count,
			max_retries   = excluded.max_retries,
			priority      = excluded.priority,
			last_attempt  = NULL,
			error_message = NULL;`

	countSyncEntriesByEntityType = `
		SELECT entity_type, COUNT(*)
		FROM sync_queue
		GROUP BY entity_type;`

	recordSyncAttempt = `
		UPDATE sync_queue SET
			retry_count   = retry_count + 1,
			last_attempt  = ?,
			error_message = ?
		WHERE id = ?;`

	deleteSyncEntry = `DELETE FROM sync_queue WHERE id = ?;`

	deleteSyncEntryByEntity = `DELETE FROM sync_queue WHERE entity_type = ? AND entity_id = ?;`

	getValidListItems = `
		SELECT list_key, item_id, data, cached_at, cache_expiry
		FROM cached_list_items
		WHERE list_key = ? AND cache_expiry > ?
		ORDER BY item_id;`

	purgeExpiredListItems = `DELETE FROM cached_list_items WHERE list_key = ? AND cache_expiry <= ?;`

	upsertListItem = `
		INSERT INTO cached_list_items (list_key, item_id, data, cached_at, cache_expiry)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (list_key, item_id) DO UPDATE SET
			data         = excluded.data,
			cached_at    = excluded.cached_at,
			cache_expiry = excluded.cache_expiry;`
)
