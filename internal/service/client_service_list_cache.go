package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/field-sync/internal/adapter"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/metrics"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/models"
)

// ApplicationsListKey prefixes the cache key of a service provider's
// application list.
const ApplicationsListKey = "applications"

type listCacheService struct {
	cache  store.ListCacheRepository
	remote adapter.RemoteService

	serviceProviderID string
	ttl               time.Duration
	now               func() time.Time

	logger *logger.Logger
}

func NewListCacheService(cache store.ListCacheRepository, remote adapter.RemoteService, serviceProviderID string, ttl time.Duration, logger *logger.Logger) ListCacheService {
	return &listCacheService{
		cache:             cache,
		remote:            remote,
		serviceProviderID: serviceProviderID,
		ttl:               ttl,
		now:               time.Now,
		logger:            logger,
	}
}

// FetchList serves stale-while-revalidate reads. The refresh purges only
// expired rows and upserts the fresh ones, so valid rows never disappear in
// between. The final Success carries what the cache holds after the merge,
// not the raw response.
func (l *listCacheService) FetchList(ctx context.Context, listKey string, call RemoteListCall) <-chan models.ListResult {
	out := make(chan models.ListResult, 2)

	go func() {
		defer close(out)
		log := logger.FromContext(ctx)

		cached, err := l.cache.GetValid(ctx, listKey, l.now().UTC())
		if err != nil {
			log.Err(err).
				Str("func", "listCacheService.FetchList").
				Str("list_key", listKey).
				Msg("failed to read cached rows")
			cached = nil
		}

		if !emit(ctx, out, models.ListResult{State: models.ListLoading, Items: cached}) {
			return
		}

		fail := func(err error) {
			metrics.IncListRefresh(listName(listKey), models.ListError.String())
			emit(ctx, out, models.ListResult{
				State:   models.ListError,
				Items:   cached,
				Err:     err,
				Message: err.Error(),
			})
		}

		fresh, err := call(ctx)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "listCacheService.FetchList").
				Str("list_key", listKey).
				Msg("list refresh failed, serving cached rows")
			fail(err)
			return
		}

		now := l.now().UTC()
		if _, err = l.cache.PurgeExpired(ctx, listKey, now); err != nil {
			fail(fmt.Errorf("error purging expired rows: %w", err))
			return
		}

		// the caller keeps ownership of fresh
		rows := make([]models.CachedListItem, len(fresh))
		for i, item := range fresh {
			item.ListKey = listKey
			item.CachedAt = now
			item.CacheExpiry = now.Add(l.ttl)
			rows[i] = item
		}
		if err = l.cache.Upsert(ctx, rows...); err != nil {
			fail(fmt.Errorf("error merging fresh rows: %w", err))
			return
		}

		merged, err := l.cache.GetValid(ctx, listKey, now)
		if err != nil {
			fail(fmt.Errorf("error reading merged rows: %w", err))
			return
		}

		metrics.IncListRefresh(listName(listKey), models.ListSuccess.String())
		emit(ctx, out, models.ListResult{State: models.ListSuccess, Items: merged})
	}()

	return out
}

func (l *listCacheService) Applications(ctx context.Context) <-chan models.ListResult {
	key := ApplicationsListKey + ":" + l.serviceProviderID

	return l.FetchList(ctx, key, func(ctx context.Context) ([]models.CachedListItem, error) {
		apps, err := l.remote.ListApplications(ctx, l.serviceProviderID)
		if err != nil {
			return nil, err
		}

		items := make([]models.CachedListItem, 0, len(apps))
		for _, app := range apps {
			data, err := json.Marshal(app)
			if err != nil {
				return nil, fmt.Errorf("error encoding application %s: %w", app.ID, err)
			}
			items = append(items, models.CachedListItem{ItemID: app.ID, Data: data})
		}
		return items, nil
	})
}

// DecodeApplications turns cached application rows back into applications.
func DecodeApplications(items []models.CachedListItem) ([]models.Application, error) {
	apps := make([]models.Application, 0, len(items))
	for _, item := range items {
		var app models.Application
		if err := json.Unmarshal(item.Data, &app); err != nil {
			return nil, fmt.Errorf("error decoding cached application %s: %w", item.ItemID, err)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

func emit(ctx context.Context, out chan<- models.ListResult, res models.ListResult) bool {
	select {
	case out <- res:
		return true
	case <-ctx.Done():
		return false
	}
}

// listName strips the per-provider suffix so the metric label stays bounded.
func listName(listKey string) string {
	name, _, _ := strings.Cut(listKey, ":")
	return name
}
