package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/internal/validators"
	"github.com/MKhiriev/field-sync/models"
)

const (
	msgSubmissionStored   = "submission stored"
	msgSubmissionUpToDate = "submission already up to date"
)

type submissionService struct {
	submissions  store.SubmissionRepository
	applications store.ApplicationRepository
	validator    validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewSubmissionService(storages *store.Storages, logger *logger.Logger) SubmissionService {
	return &submissionService{
		submissions:  storages.SubmissionRepository,
		applications: storages.ApplicationRepository,
		validator:    validators.NewFormValidator(),
		now:          time.Now,
		logger:       logger,
	}
}

// Submit returns:
//   - ErrInvalidDataProvided when the submission fails validation
//   - ErrUnknownApplication when the application does not exist or belongs
//     to another service provider
//   - store.ErrDuplicateSubmission when another record holds the same
//     (form type, application) slot or the record id is reused for another slot
//   - other store sentinels as classified by the repository
func (s *submissionService) Submit(ctx context.Context, sub models.FormSubmission) (models.SubmitFormResponse, error) {
	log := logger.FromContext(ctx)

	err := s.validator.Validate(ctx, sub,
		validators.FieldFormType,
		validators.FieldRecordID,
		validators.FieldApplicationID,
		validators.FieldServiceProviderID,
		validators.FieldPayload,
		validators.FieldFormVersion,
	)
	if err != nil {
		log.Debug().Err(err).Str("record_id", sub.RecordID).Msg("invalid submission")
		return models.SubmitFormResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	app, err := s.applications.GetByID(ctx, sub.ApplicationID)
	if errors.Is(err, store.ErrApplicationNotFound) {
		return models.SubmitFormResponse{}, fmt.Errorf("%w: %s", ErrUnknownApplication, sub.ApplicationID)
	}
	if err != nil {
		return models.SubmitFormResponse{}, fmt.Errorf("error loading application: %w", err)
	}
	if app.ServiceProviderID != sub.ServiceProviderID {
		log.Warn().
			Str("application_id", app.ID).
			Str("service_provider_id", sub.ServiceProviderID).
			Msg("submission for an application of another service provider")
		return models.SubmitFormResponse{}, fmt.Errorf("%w: %w", ErrUnknownApplication, ErrForeignApplication)
	}

	if sub.ReceivedAt.IsZero() {
		sub.ReceivedAt = s.now().UTC()
	}

	saved, err := s.submissions.Save(ctx, sub)
	if err != nil {
		log.Err(err).
			Str("func", "submissionService.Submit").
			Str("record_id", sub.RecordID).
			Msg("failed to store submission")
		return models.SubmitFormResponse{}, fmt.Errorf("error storing submission: %w", err)
	}
	if saved {
		return models.SubmitFormResponse{Success: true, Message: msgSubmissionStored}, nil
	}

	existing, err := s.submissions.GetByRecordID(ctx, sub.RecordID)
	if err != nil {
		return models.SubmitFormResponse{}, fmt.Errorf("error loading stored submission: %w", err)
	}
	if existing.FormType != sub.FormType || existing.ApplicationID != sub.ApplicationID {
		return models.SubmitFormResponse{}, fmt.Errorf("%w: record %s belongs to another form", store.ErrDuplicateSubmission, sub.RecordID)
	}

	return models.SubmitFormResponse{Success: true, Message: msgSubmissionUpToDate}, nil
}
