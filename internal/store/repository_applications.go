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

type applicationRepository struct {
	*DB
	logger *logger.Logger
}

func NewApplicationRepository(db *DB, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *applicationRepository) ListByServiceProvider(ctx context.Context, serviceProviderID string) ([]models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectApplicationsQuery(r.builder(), sq.Eq{"service_provider_id": serviceProviderID})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "applicationRepository.ListByServiceProvider").
			Str("service_provider_id", serviceProviderID).
			Msg("failed to execute query for applications")
		return nil, fmt.Errorf("%w: %w", kindError(r.classify(err)), err)
	}
	defer rows.Close()

	apps := make([]models.Application, 0, 32)
	for rows.Next() {
		app, scanErr := scanApplication(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "applicationRepository.ListByServiceProvider").Msg("failed to scan application row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		apps = append(apps, app)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return apps, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectApplicationsQuery(r.builder(), sq.Eq{"id": id})
	if err != nil {
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "applicationRepository.GetByID").Str("id", id).Msg("failed to get application")
		return models.Application{}, fmt.Errorf("%w: %w", kindError(r.classify(err)), err)
	}

	return app, nil
}

func (r *applicationRepository) Upsert(ctx context.Context, apps ...models.Application) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, app := range apps {
		if _, err = tx.ExecContext(ctx, upsertApplication,
			app.ID,
			app.ServiceProviderID,
			app.CustomerName,
			app.Address,
			app.Status,
			nullableTime(app.ProposedDate),
		); err != nil {
			log.Err(err).Str("func", "applicationRepository.Upsert").Str("id", app.ID).Msg("failed to upsert application")
			return fmt.Errorf("%w: %w", kindError(r.classify(err)), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func scanApplication(row rowScanner) (models.Application, error) {
	var (
		app          models.Application
		proposedDate sql.NullTime
	)

	if err := row.Scan(
		&app.ID,
		&app.ServiceProviderID,
		&app.CustomerName,
		&app.Address,
		&app.Status,
		&proposedDate,
	); err != nil {
		return models.Application{}, err
	}
	app.ProposedDate = timePtr(proposedDate)

	return app, nil
}
