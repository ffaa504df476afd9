package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/field-sync/internal/adapter"
	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/metrics"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/models"
)

type pushService struct {
	forms  store.FormRepository
	queue  store.SyncQueueRepository
	remote adapter.RemoteService

	serviceProviderID string
	maxRetries        int

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewPushService builds the send-once routine shared by the submission
// pipeline and the retry worker.
func NewPushService(storages *store.ClientStorages, remote adapter.RemoteService, cfg config.ClientConfig, logger *logger.Logger) PushService {
	maxRetries := cfg.Sync.MaxRetries
	if maxRetries <= 0 {
		maxRetries = models.DefaultMaxRetries
	}

	return &pushService{
		forms:             storages.FormRepository,
		queue:             storages.SyncQueueRepository,
		remote:            remote,
		serviceProviderID: cfg.App.ServiceProviderID,
		maxRetries:        maxRetries,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// PushOnce submits rec and applies the result:
//   - success: SYNCED, attempts reset, queue entry removed
//   - terminal rejection: FAILED, attempts+1, queue entry removed
//   - retryable failure: attempts+1; PENDING with the queue entry left intact
//     while attempts stay under the cap, FAILED without it once the cap is
//     reached
//
// The state update is conditional on rec.Version. When the record was saved
// again while the request was in flight the newer save wins: nothing is
// changed and the outcome is PushRetry.
func (p *pushService) PushOnce(ctx context.Context, rec models.FormRecord) (models.PushOutcome, error) {
	log := logger.FromContext(ctx)

	req := models.SubmitFormRequest{
		RecordID:          rec.ID,
		ApplicationID:     rec.ApplicationID,
		ServiceProviderID: p.serviceProviderID,
		Version:           rec.Version,
		Payload:           rec.Payload,
	}
	_, pushErr := p.remote.SubmitForm(ctx, rec.FormType, req)
	now := p.now().UTC()

	var (
		entry    models.SyncQueueEntry
		hasEntry bool
		outcome  models.PushOutcome
		state    models.SyncState
	)

	if pushErr == nil {
		outcome = models.PushSynced
		state = models.SyncState{
			SyncStatus:      models.SyncStatusSynced,
			SyncAttempts:    0,
			LastSyncAttempt: &now,
		}
	} else {
		message := pushErr.Error()
		attempts := rec.SyncAttempts + 1
		state = models.SyncState{
			SyncStatus:      models.SyncStatusFailed,
			SyncAttempts:    attempts,
			LastSyncAttempt: &now,
			SyncError:       &message,
		}
		outcome = models.PushTerminalFailure

		if Classify(pushErr) == Retryable {
			maxRetries := p.maxRetries
			var err error
			entry, err = p.queue.GetByEntity(ctx, rec.FormType.EntityType(), rec.ID)
			switch {
			case err == nil:
				hasEntry = true
				if entry.MaxRetries > 0 {
					maxRetries = entry.MaxRetries
				}
			case !errors.Is(err, store.ErrQueueEntryNotFound):
				return models.PushRetry, fmt.Errorf("error loading queue entry: %w", err)
			}

			if attempts < maxRetries {
				outcome = models.PushRetry
				state.SyncStatus = models.SyncStatusPending
			}
		}

		log.Warn().Err(pushErr).
			Str("func", "pushService.PushOnce").
			Str("record_id", rec.ID).
			Str("form_type", rec.FormType.String()).
			Int("attempts", attempts).
			Str("outcome", outcome.String()).
			Msg("form push failed")
	}

	if err := p.forms.UpdateSyncState(ctx, rec.ID, rec.Version, state); err != nil {
		if errors.Is(err, store.ErrVersionMismatch) {
			log.Info().
				Str("func", "pushService.PushOnce").
				Str("record_id", rec.ID).
				Int64("version", rec.Version).
				Msg("record saved again during push, newer version stays pending")
			metrics.IncPush(rec.FormType.String(), models.PushRetry.String())
			return models.PushRetry, nil
		}
		log.Err(err).
			Str("func", "pushService.PushOnce").
			Str("record_id", rec.ID).
			Msg("failed to update sync state")
		return outcome, fmt.Errorf("error updating sync state of %s: %w", rec.ID, err)
	}

	if outcome == models.PushRetry {
		p.ensureQueued(ctx, rec, hasEntry)
	} else {
		p.dropQueueEntry(ctx, rec)
	}

	metrics.IncPush(rec.FormType.String(), outcome.String())
	return outcome, nil
}

// ensureQueued recreates the queue entry of a record that stays PENDING when
// the enqueue step of the pipeline had failed. An existing entry is left
// intact; retries are counted on it by the retry worker.
func (p *pushService) ensureQueued(ctx context.Context, rec models.FormRecord, hasEntry bool) {
	if hasEntry {
		return
	}

	_, err := p.queue.Enqueue(ctx, models.SyncQueueEntry{
		ID:         p.ids.Generate(),
		EntityType: rec.FormType.EntityType(),
		EntityID:   rec.ID,
		Operation:  models.OperationUpdate,
		Data:       rec.Payload,
		MaxRetries: p.maxRetries,
		Priority:   models.DefaultPriority,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pushService.ensureQueued").
			Str("record_id", rec.ID).
			Msg("failed to recreate queue entry")
	}
}

// dropQueueEntry removes the queue entry of a record that left PENDING. A
// failure only leaves an entry the retry worker discards on its next pass.
func (p *pushService) dropQueueEntry(ctx context.Context, rec models.FormRecord) {
	err := p.queue.DeleteByEntity(ctx, rec.FormType.EntityType(), rec.ID)
	if err != nil && !errors.Is(err, store.ErrQueueEntryNotFound) {
		logger.FromContext(ctx).Err(err).
			Str("func", "pushService.dropQueueEntry").
			Str("record_id", rec.ID).
			Msg("failed to remove queue entry")
	}
}
