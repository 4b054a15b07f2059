package http

import (
	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/service"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/utils"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	cookie    cookieSettings
	server    config.Server
	idFactory session.IDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		cookie:    newCookieSettings(cfg.App),
		server:    cfg.Server,
		idFactory: utils.NewUUIDGenerator(),
		logger:    logger,
	}
}
