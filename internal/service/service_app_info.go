package service

import (
	"context"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version: the build must inject one.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("creating app info service")
	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
