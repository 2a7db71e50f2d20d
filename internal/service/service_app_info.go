package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
)

type appInfoService struct {
	info models.VersionInfo
}

// NewAppInfoService reports the linked build metadata. When the binary was
// built without a version, cfg.Version is used instead; if both are empty
// ErrVersionIsNotSpecified is returned.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App) (AppInfoService, error) {
	info := buildInfo.View()
	if info.Version == "" || info.Version == "N/A" {
		if cfg.Version == "" {
			return nil, ErrVersionIsNotSpecified
		}
		info.Version = cfg.Version
	}

	return &appInfoService{info: info}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return s.info
}
