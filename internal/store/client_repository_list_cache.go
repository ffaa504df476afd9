package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/models"
)

type listCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewListCacheRepository(db *DB, logger *logger.Logger) ListCacheRepository {
	return &listCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// GetValid returns the rows of listKey that have not expired at now.
func (l *listCacheRepository) GetValid(ctx context.Context, listKey string, now time.Time) ([]models.CachedListItem, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, getValidListItems, listKey, now.UTC())
	if err != nil {
		log.Err(err).
			Str("func", "listCacheRepository.GetValid").
			Str("list_key", listKey).
			Msg("failed to execute query for cached list items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.CachedListItem, 0, 16)
	for rows.Next() {
		item, scanErr := scanCachedListItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "listCacheRepository.GetValid").Msg("failed to scan cached list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// PurgeExpired deletes only the rows of listKey that expired at now and
// reports how many were removed.
func (l *listCacheRepository) PurgeExpired(ctx context.Context, listKey string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := l.DB.ExecContext(ctx, purgeExpiredListItems, listKey, now.UTC())
	if err != nil {
		log.Err(err).
			Str("func", "listCacheRepository.PurgeExpired").
			Str("list_key", listKey).
			Msg("failed to purge expired list items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// Upsert writes all items in one transaction.
func (l *listCacheRepository) Upsert(ctx context.Context, items ...models.CachedListItem) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "listCacheRepository.Upsert").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertListItem)
	if err != nil {
		log.Err(err).Str("func", "listCacheRepository.Upsert").Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer stmt.Close()

	for i, item := range items {
		if _, err = stmt.ExecContext(ctx,
			item.ListKey,
			item.ItemID,
			payloadText(item.Data),
			item.CachedAt.UTC(),
			item.CacheExpiry.UTC(),
		); err != nil {
			log.Err(err).
				Str("func", "listCacheRepository.Upsert").
				Str("list_key", item.ListKey).
				Str("item_id", item.ItemID).
				Int("index", i).
				Msg("failed to upsert cached list item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "listCacheRepository.Upsert").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
