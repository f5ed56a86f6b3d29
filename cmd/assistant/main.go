package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ykarpenko/assistant-bot/internal/cli"
	"github.com/ykarpenko/assistant-bot/internal/client"
	"github.com/ykarpenko/assistant-bot/internal/config"
	"github.com/ykarpenko/assistant-bot/internal/handler"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/internal/service"
	"github.com/ykarpenko/assistant-bot/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewReplLogger("assistant-bot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storages")
	}

	services := service.NewServices(storages, cfg.App, log)
	handlers := handler.NewHandler(services, log)
	repl := cli.New(handlers, os.Stdin, os.Stdout, log)

	app, err := client.NewApp(services, storages, repl, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init assistant app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("assistant run error")
	}
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
