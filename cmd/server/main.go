package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-core/internal/config"
	"github.com/MKhiriev/go-shop-core/internal/handler"
	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/internal/server"
	"github.com/MKhiriev/go-shop-core/internal/service"
	"github.com/MKhiriev/go-shop-core/internal/store"
	"github.com/MKhiriev/go-shop-core/internal/telemetry"
	"github.com/MKhiriev/go-shop-core/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-shop-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg, log)

	telemetryStore := telemetry.NewStore(cfg.Telemetry, log)
	if notifier := telemetry.NewWebhookNotifier(cfg.Telemetry.AlertWebhookURL, log); notifier != nil {
		telemetryStore.OnAlert(notifier.Notify)
	}

	handlers, err := handler.NewHandlers(services, telemetryStore, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(telemetryStore, storages, cfg.Telemetry, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
