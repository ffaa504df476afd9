package service

import (
	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/store"
)

// Services groups the intake server's business services.
type Services struct {
	SubmissionService  SubmissionService
	ApplicationService ApplicationService
	AuthService        AuthService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App.Version, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SubmissionService:  NewSubmissionService(storages, logger),
		ApplicationService: NewApplicationService(storages, logger),
		AuthService:        NewAuthService(cfg.Auth, logger),
		AppInfoService:     appInfo,
	}, nil
}
