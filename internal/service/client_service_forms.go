package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/internal/utils"
	"github.com/MKhiriev/field-sync/internal/validators"
	"github.com/MKhiriev/field-sync/models"
)

const (
	msgSaved      = "saved"
	msgWillRetry  = "saved, will retry later"
	msgSyncFailed = "saved, sync failed after %d %s"
)

type formSubmissionService struct {
	forms     store.FormRepository
	queue     store.SyncQueueRepository
	push      PushService
	validator validators.Validator

	maxRetries int

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewFormSubmissionService wires the submission pipeline over the local store
// and push.
func NewFormSubmissionService(storages *store.ClientStorages, push PushService, maxRetries int, logger *logger.Logger) FormSubmissionService {
	if maxRetries <= 0 {
		maxRetries = models.DefaultMaxRetries
	}

	return &formSubmissionService{
		forms:      storages.FormRepository,
		queue:      storages.SyncQueueRepository,
		push:       push,
		validator:  validators.NewFormValidator(),
		maxRetries: maxRetries,
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *formSubmissionService) Open(ctx context.Context, formType models.FormType, applicationID string) (models.FormRecord, error) {
	log := logger.FromContext(ctx)

	rec, err := s.forms.GetByCompositeKey(ctx, formType, applicationID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, store.ErrFormRecordNotFound) {
		return models.FormRecord{}, fmt.Errorf("error opening form: %w", err)
	}

	draft := models.FormRecord{
		ID:            s.ids.Generate(),
		FormType:      formType,
		ApplicationID: applicationID,
		Payload:       json.RawMessage(`{}`),
		SyncStatus:    models.SyncStatusDraft,
		CreatedAt:     s.now().UTC(),
		UpdatedAt:     s.now().UTC(),
	}
	if err = s.validator.Validate(ctx, draft, validators.FieldFormType, validators.FieldApplicationID); err != nil {
		return models.FormRecord{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	rec, err = s.forms.Upsert(ctx, draft)
	if err != nil {
		log.Err(err).
			Str("func", "formSubmissionService.Open").
			Str("form_type", formType.String()).
			Str("application_id", applicationID).
			Msg("failed to create draft")
		return models.FormRecord{}, fmt.Errorf("%w: %w", ErrLocalWrite, err)
	}

	return rec, nil
}

// Save runs the submission pipeline. The returned error is non-nil only when
// the record could not be stored; push failures are reported in the result.
func (s *formSubmissionService) Save(ctx context.Context, rec models.FormRecord) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, rec); err != nil {
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	now := s.now().UTC()
	if rec.ID == "" {
		rec.ID = s.ids.Generate()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.SyncStatus = models.SyncStatusPending
	rec.SyncAttempts = 0
	rec.LastSyncAttempt = nil
	rec.SyncError = nil
	rec.UpdatedAt = now

	stored, err := s.forms.Upsert(ctx, rec)
	if err != nil {
		log.Err(err).
			Str("func", "formSubmissionService.Save").
			Str("form_type", rec.FormType.String()).
			Str("application_id", rec.ApplicationID).
			Msg("local write failed")
		return models.SaveResult{}, fmt.Errorf("%w: %w", ErrLocalWrite, err)
	}

	_, err = s.queue.Enqueue(ctx, models.SyncQueueEntry{
		ID:         s.ids.Generate(),
		EntityType: stored.FormType.EntityType(),
		EntityID:   stored.ID,
		Operation:  models.OperationUpdate,
		Data:       stored.Payload,
		RetryCount: 0,
		MaxRetries: s.maxRetries,
		Priority:   models.DefaultPriority,
		CreatedAt:  now,
	})
	if err != nil {
		log.Err(err).
			Str("func", "formSubmissionService.Save").
			Str("record_id", stored.ID).
			Msg("failed to enqueue saved form, it stays pending")
	}

	outcome, err := s.push.PushOnce(ctx, stored)
	if err != nil {
		log.Err(err).
			Str("func", "formSubmissionService.Save").
			Str("record_id", stored.ID).
			Msg("push bookkeeping failed")
		outcome = models.PushRetry
	}

	return s.result(ctx, stored, outcome), nil
}

func (s *formSubmissionService) result(ctx context.Context, rec models.FormRecord, outcome models.PushOutcome) models.SaveResult {
	res := models.SaveResult{RecordID: rec.ID, Outcome: outcome}

	switch outcome {
	case models.PushSynced:
		res.Message = msgSaved
	case models.PushRetry:
		res.Message = msgWillRetry
	default:
		attempts := rec.SyncAttempts + 1
		if current, err := s.forms.GetByID(ctx, rec.ID); err == nil {
			attempts = current.SyncAttempts
		}
		res.Message = syncFailedMessage(attempts)
	}

	return res
}

func (s *formSubmissionService) Get(ctx context.Context, recordID string) (models.FormRecord, error) {
	return s.forms.GetByID(ctx, recordID)
}

func (s *formSubmissionService) List(ctx context.Context, formType models.FormType, statuses ...models.SyncStatus) ([]models.FormRecord, error) {
	return s.forms.ListByStatus(ctx, formType, statuses...)
}

func syncFailedMessage(attempts int) string {
	noun := "attempts"
	if attempts == 1 {
		noun = "attempt"
	}
	return fmt.Sprintf(msgSyncFailed, attempts, noun)
}
