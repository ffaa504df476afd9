package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/models"
)

type applicationService struct {
	applications store.ApplicationRepository

	logger *logger.Logger
}

func NewApplicationService(storages *store.Storages, logger *logger.Logger) ApplicationService {
	return &applicationService{
		applications: storages.ApplicationRepository,
		logger:       logger,
	}
}

func (a *applicationService) List(ctx context.Context, serviceProviderID string) ([]models.Application, error) {
	if strings.TrimSpace(serviceProviderID) == "" {
		return nil, ErrInvalidDataProvided
	}

	apps, err := a.applications.ListByServiceProvider(ctx, serviceProviderID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "applicationService.List").
			Str("service_provider_id", serviceProviderID).
			Msg("failed to list applications")
		return nil, fmt.Errorf("error listing applications: %w", err)
	}

	return apps, nil
}
