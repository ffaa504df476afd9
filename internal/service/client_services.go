package service

import (
	"github.com/MKhiriev/field-sync/internal/adapter"
	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/store"
)

type ClientServices struct {
	FormService      FormSubmissionService
	PushService      PushService
	RetryService     RetryService
	ListCacheService ListCacheService
	SyncJob          ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteService, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	pushSvc := NewPushService(storages, remote, cfg, logger)
	retrySvc := NewRetryService(storages, pushSvc, cfg.Sync.MaxRetries, logger)

	return &ClientServices{
		FormService:      NewFormSubmissionService(storages, pushSvc, cfg.Sync.MaxRetries, logger),
		PushService:      pushSvc,
		RetryService:     retrySvc,
		ListCacheService: NewListCacheService(storages.ListCacheRepository, remote, cfg.App.ServiceProviderID, cfg.Sync.CacheTTL, logger),
		SyncJob:          NewClientSyncJob(retrySvc),
	}
}
