package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/models"
)

// submissionRepository is the PostgreSQL-backed [SubmissionRepository].
type submissionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		DB:     db,
		logger: logger,
	}
}

// Save maps driver failures through the error classifier:
//   - unique violation on the form slot -> [ErrDuplicateSubmission]
//   - foreign key violation -> [ErrUnknownReference]
//   - connection, rollback and shutdown classes -> [ErrStorageUnavailable]
func (r *submissionRepository) Save(ctx context.Context, sub models.FormSubmission) (bool, error) {
	log := logger.FromContext(ctx)

	receivedAt := sub.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	res, err := r.DB.ExecContext(ctx, saveSubmission,
		sub.RecordID,
		string(sub.FormType),
		sub.ApplicationID,
		sub.ServiceProviderID,
		sub.Version,
		payloadText(sub.Payload),
		receivedAt.UTC(),
	)
	if err != nil {
		kind := r.classify(err)
		log.Err(err).
			Str("func", "submissionRepository.Save").
			Str("record_id", sub.RecordID).
			Str("pg_code", postgresError(err)).
			Int("kind", int(kind)).
			Msg("failed to save submission")
		return false, fmt.Errorf("%w: %w", kindError(kind), err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *submissionRepository) GetByRecordID(ctx context.Context, recordID string) (models.FormSubmission, error) {
	log := logger.FromContext(ctx)

	var (
		sub      models.FormSubmission
		formType string
		payload  []byte
	)

	err := r.DB.QueryRowContext(ctx, getSubmissionByRecordID, recordID).Scan(
		&sub.RecordID,
		&formType,
		&sub.ApplicationID,
		&sub.ServiceProviderID,
		&sub.Version,
		&payload,
		&sub.ReceivedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.FormSubmission{}, ErrFormRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "submissionRepository.GetByRecordID").
			Str("record_id", recordID).
			Msg("failed to get submission")
		return models.FormSubmission{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	sub.FormType = models.FormType(formType)
	sub.Payload = payload

	return sub, nil
}
