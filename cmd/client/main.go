package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-session-auth/internal/adapter"
	"github.com/MKhiriev/go-session-auth/internal/client"
	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/caarlos0/env/v11"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-session-auth-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	scenario, err := env.ParseAs[client.Scenario]()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading smoke scenario")
	}

	api, err := adapter.NewHTTPAPIClient(cfg.Adapter, cfg.Auth.SessionName, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(api, scenario, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("smoke run failed")
	}

	log.Info().Msg("smoke run passed")
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
