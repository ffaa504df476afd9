package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/metrics"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

type retryService struct {
	forms store.FormRepository
	queue store.SyncQueueRepository
	push  PushService

	maxRetries int

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewRetryService(storages *store.ClientStorages, push PushService, maxRetries int, logger *logger.Logger) RetryService {
	if maxRetries <= 0 {
		maxRetries = models.DefaultMaxRetries
	}

	return &retryService{
		forms:      storages.FormRepository,
		queue:      storages.SyncQueueRepository,
		push:       push,
		maxRetries: maxRetries,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

// SyncPendingForms walks a snapshot of the queue for formType. Entries whose
// record is gone are deleted and counted as orphaned; entries whose record is
// no longer PENDING are dropped. Everything else is pushed once. A failing
// entry never stops the pass.
func (r *retryService) SyncPendingForms(ctx context.Context, formType models.FormType) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{EntityType: formType.EntityType()}

	entries, err := r.queue.ListByEntityType(ctx, formType.EntityType())
	if err != nil {
		return report, fmt.Errorf("error listing queue for %s: %w", formType, err)
	}

	var errs []error
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		rec, err := r.forms.GetByID(ctx, entry.EntityID)
		if errors.Is(err, store.ErrFormRecordNotFound) {
			log.Debug().
				Str("func", "retryService.SyncPendingForms").
				Str("entry_id", entry.ID).
				Str("entity_id", entry.EntityID).
				Msg("dropping orphaned queue entry")
			if err = r.queue.Delete(ctx, entry.ID); err != nil {
				errs = append(errs, err)
			}
			report.Orphaned++
			continue
		}
		if err != nil {
			errs = append(errs, err)
			report.Failed++
			continue
		}

		if rec.SyncStatus != models.SyncStatusPending {
			if err = r.queue.Delete(ctx, entry.ID); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		outcome, err := r.push.PushOnce(ctx, rec)
		if err != nil {
			errs = append(errs, err)
		}
		if err == nil && outcome == models.PushRetry {
			r.recordRetry(ctx, entry)
		}
		if err == nil && outcome == models.PushSynced {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	log.Info().
		Str("func", "retryService.SyncPendingForms").
		Str("entity_type", report.EntityType).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Int("orphaned", report.Orphaned).
		Msg("sync pass finished")

	return report, errors.Join(errs...)
}

// recordRetry counts a worker retry on the queue entry. A record that was saved
// again during the push has no error to record; its entry was already reset
// by the new save.
func (r *retryService) recordRetry(ctx context.Context, entry models.SyncQueueEntry) {
	rec, err := r.forms.GetByID(ctx, entry.EntityID)
	if err != nil || rec.SyncStatus != models.SyncStatusPending || rec.SyncError == nil {
		return
	}

	if err = r.queue.RecordAttempt(ctx, entry.ID, *rec.SyncError); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "retryService.recordRetry").
			Str("entry_id", entry.ID).
			Msg("failed to record retry")
	}
}

// SyncAll drains the queue of every form type and refreshes the queue depth
// gauge.
func (r *retryService) SyncAll(ctx context.Context) ([]models.SyncReport, error) {
	reports := make([]models.SyncReport, 0, len(models.FormTypes))

	var errs []error
	for _, formType := range models.FormTypes {
		report, err := r.SyncPendingForms(ctx, formType)
		if err != nil {
			errs = append(errs, err)
		}
		reports = append(reports, report)
	}

	if _, err := r.QueueDepth(ctx); err != nil {
		errs = append(errs, err)
	}

	return reports, errors.Join(errs...)
}

// Retry is the explicit operator action that brings a FAILED record back. It
// is never called automatically.
func (r *retryService) Retry(ctx context.Context, recordID string) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	rec, err := r.forms.GetByID(ctx, recordID)
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("error loading record %s: %w", recordID, err)
	}
	if rec.SyncStatus != models.SyncStatusFailed {
		return models.SaveResult{}, fmt.Errorf("%w: %s is %s", ErrRecordNotFailed, recordID, rec.SyncStatus)
	}

	state := models.SyncState{SyncStatus: models.SyncStatusPending}
	if err = r.forms.UpdateSyncState(ctx, rec.ID, rec.Version, state); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrLocalWrite, err)
	}
	rec.SyncStatus = models.SyncStatusPending
	rec.SyncAttempts = 0
	rec.SyncError = nil

	if err = r.enqueue(ctx, rec); err != nil {
		log.Err(err).
			Str("func", "retryService.Retry").
			Str("record_id", rec.ID).
			Msg("failed to enqueue retried form")
	}

	outcome, err := r.push.PushOnce(ctx, rec)
	if err != nil {
		outcome = models.PushRetry
	}

	res := models.SaveResult{RecordID: rec.ID, Outcome: outcome}
	switch outcome {
	case models.PushSynced:
		res.Message = msgSaved
	case models.PushRetry:
		res.Message = msgWillRetry
	default:
		attempts := 1
		if current, err := r.forms.GetByID(ctx, rec.ID); err == nil {
			attempts = current.SyncAttempts
		}
		res.Message = syncFailedMessage(attempts)
	}

	return res, nil
}

// RequeuePending restores the queue invariant for PENDING records whose
// enqueue step failed.
func (r *retryService) RequeuePending(ctx context.Context) (int, error) {
	added := 0

	var errs []error
	for _, formType := range models.FormTypes {
		pending, err := r.forms.ListByStatus(ctx, formType, models.SyncStatusPending)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		for _, rec := range pending {
			_, err = r.queue.GetByEntity(ctx, formType.EntityType(), rec.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, store.ErrQueueEntryNotFound) {
				errs = append(errs, err)
				continue
			}

			entry := r.newEntry(rec)
			entry.RetryCount = rec.SyncAttempts
			if _, err = r.queue.Enqueue(ctx, entry); err != nil {
				errs = append(errs, err)
				continue
			}
			added++
		}
	}

	return added, errors.Join(errs...)
}

func (r *retryService) QueueDepth(ctx context.Context) (map[string]int, error) {
	counts, err := r.queue.CountByEntityType(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting queue entries: %w", err)
	}

	for _, formType := range models.FormTypes {
		metrics.SetQueueDepth(formType.EntityType(), counts[formType.EntityType()])
	}

	return counts, nil
}

func (r *retryService) QueueEntries(ctx context.Context) ([]models.SyncQueueEntry, error) {
	entries, err := r.queue.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing queue entries: %w", err)
	}
	return entries, nil
}

func (r *retryService) enqueue(ctx context.Context, rec models.FormRecord) error {
	_, err := r.queue.Enqueue(ctx, r.newEntry(rec))
	return err
}

func (r *retryService) newEntry(rec models.FormRecord) models.SyncQueueEntry {
	return models.SyncQueueEntry{
		ID:         r.ids.Generate(),
		EntityType: rec.FormType.EntityType(),
		EntityID:   rec.ID,
		Operation:  models.OperationUpdate,
		Data:       rec.Payload,
		MaxRetries: r.maxRetries,
		Priority:   models.DefaultPriority,
		CreatedAt:  r.now().UTC(),
	}
}
