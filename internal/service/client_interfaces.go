// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/field-sync/models"
)

// FormSubmissionService is the entry point the field UI uses to open and save
// forms. A save is successful as soon as the local write is durable; remote
// sync is best-effort and reported through [models.SaveResult].
type FormSubmissionService interface {
	// Open returns the record for (formType, applicationID), creating a DRAFT
	// row on first open.
	Open(ctx context.Context, formType models.FormType, applicationID string) (models.FormRecord, error)

	// Save persists rec as PENDING, queues it and attempts one push. The
	// error is non-nil only when the local write failed; it then wraps
	// ErrLocalWrite and nothing is queued.
	Save(ctx context.Context, rec models.FormRecord) (models.SaveResult, error)

	// Get loads a record by id.
	Get(ctx context.Context, recordID string) (models.FormRecord, error)

	// List returns the records of formType in the given statuses; no statuses
	// means all of them.
	List(ctx context.Context, formType models.FormType, statuses ...models.SyncStatus) ([]models.FormRecord, error)
}

// PushService sends a single record to the remote service and translates the
// result into the record's sync state and the queue.
type PushService interface {
	// PushOnce never returns remote failures as errors; they are folded into
	// the outcome. The error reports local store failures only.
	PushOnce(ctx context.Context, rec models.FormRecord) (models.PushOutcome, error)
}

// RetryService drains the sync queue.
type RetryService interface {
	// SyncPendingForms pushes every queued record of formType. It keeps going
	// after individual failures.
	SyncPendingForms(ctx context.Context, formType models.FormType) (models.SyncReport, error)

	// SyncAll runs SyncPendingForms for every form type.
	SyncAll(ctx context.Context) ([]models.SyncReport, error)

	// Retry moves a FAILED record back to PENDING and pushes it once.
	Retry(ctx context.Context, recordID string) (models.SaveResult, error)

	// RequeuePending creates the missing queue entries of PENDING records and
	// returns how many were added.
	RequeuePending(ctx context.Context) (int, error)

	// QueueDepth returns the number of queued entries per entity type.
	QueueDepth(ctx context.Context) (map[string]int, error)

	// QueueEntries returns every queued entry in push order.
	QueueEntries(ctx context.Context) ([]models.SyncQueueEntry, error)
}

// RemoteListCall fetches a list from the remote service. ListKey and the
// cache timestamps of the returned items are filled in by the cache.
type RemoteListCall func(ctx context.Context) ([]models.CachedListItem, error)

// ListCacheService serves cached list rows first and refreshes them from the
// network.
type ListCacheService interface {
	// FetchList emits Loading with the currently valid cached rows, then
	// Success with the merged cache or Error with the cached rows as fallback.
	// The channel is closed afterwards.
	FetchList(ctx context.Context, listKey string, call RemoteListCall) <-chan models.ListResult

	// Applications runs FetchList for the configured service provider's
	// application list.
	Applications(ctx context.Context) <-chan models.ListResult
}

// ClientSyncJob periodically drains the queue in the background.
type ClientSyncJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Trigger asks for an immediate pass. It never blocks and coalesces with a
	// pass that is already requested.
	Trigger()

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}
