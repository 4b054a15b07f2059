package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spellbook/internal/adapter"
	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/handler"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/internal/server"
	"github.com/MKhiriev/go-spellbook/internal/service"
	"github.com/MKhiriev/go-spellbook/internal/session"
	"github.com/MKhiriev/go-spellbook/internal/store"
	"github.com/MKhiriev/go-spellbook/internal/utils"
	"github.com/MKhiriev/go-spellbook/internal/workers"
	"github.com/MKhiriev/go-spellbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.AppBuildInfo{
		BuildVersion: buildVersion,
		BuildDate:    buildDate,
		BuildCommit:  buildCommit,
	})

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-spellbook", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-spellbook", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("spell_api_url", cfg.Adapter.SpellAPIURL).
		Dur("session_ttl", cfg.App.SessionTTL).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	spellAPI, err := adapter.NewHTTPSpellAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating spell API adapter")
	}

	sessions := session.NewManager(cfg.App.SessionTTL, utils.NewUUIDGenerator())

	services, err := service.NewServices(storages, spellAPI, sessions.Usernames(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	// seeds the shared username mirror from the persisted accounts
	usernames, err := services.AccountService.ListUsers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading usernames")
	}
	log.Info().Int("usernames", len(usernames)).Msg("usernames loaded")

	handlers, err := handler.NewHandlers(services, sessions, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(cfg.Workers, sessions, log)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	if info.BuildVersion == "" {
		info.BuildVersion = "N/A"
	}

	if info.BuildDate == "" {
		info.BuildDate = "N/A"
	}

	if info.BuildCommit == "" {
		info.BuildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
