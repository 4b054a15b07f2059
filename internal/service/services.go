package service

import (
	"fmt"

	"github.com/MKhiriev/go-spellbook/internal/adapter"
	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/store"
	"github.com/MKhiriev/go-spellbook/internal/validators"
)

type Services struct {
	AccountService   AccountService
	CharacterService CharacterService
	SpellService     SpellService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, spellAPI adapter.SpellAPIAdapter, usernames *session.KnownSet, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewCharacterValidator()

	return &Services{
		AccountService:   NewAccountService(storages.CharacterRepository, usernames, logger),
		CharacterService: NewCharacterService(storages.CharacterRepository, validator, logger),
		SpellService:     NewSpellService(spellAPI, validator, logger),
		AppInfoService:   appInfoService,
	}, nil
}
