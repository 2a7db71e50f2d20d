package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type Services struct {
	AuthService      AuthService
	VaultService     VaultService
	CategoryService  CategoryService
	ActivityService  ActivityService
	SettingsService  SettingsService
	SecurityService  SecurityService
	GeneratorService GeneratorService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, cfg.App)
	if err != nil {
		return nil, err
	}

	activityService := NewActivityService(storages.ActivityRepository, logger)

	return &Services{
		AuthService:      NewAuthService(storages, activityService, cfg.App, logger),
		VaultService:     NewVaultService(storages, activityService, logger),
		CategoryService:  NewCategoryService(storages.CategoryRepository, activityService, logger),
		ActivityService:  activityService,
		SettingsService:  NewSettingsService(storages.SettingsRepository, activityService, logger),
		SecurityService:  NewSecurityService(storages.VaultRepository, logger),
		GeneratorService: NewGeneratorService(crypto.NewCredentialTransform()),
		AppInfoService:   appInfoService,
	}, nil
}
