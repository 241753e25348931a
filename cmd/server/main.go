package main

import (
	"context"
	"fmt"

	"github.com/appforge/console-server/internal/config"
	"github.com/appforge/console-server/internal/consumer"
	"github.com/appforge/console-server/internal/handler"
	"github.com/appforge/console-server/internal/logger"
	"github.com/appforge/console-server/internal/server"
	"github.com/appforge/console-server/internal/service"
	"github.com/appforge/console-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("console-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	notifier, err := consumer.NewHTTPNotifier(cfg.Consumer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating consumer notifier")
	}

	services := service.NewServices(storages, notifier, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
