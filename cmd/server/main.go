package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-session-auth/internal/auth"
	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/handler"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/server"
	"github.com/MKhiriev/go-session-auth/internal/service"
	"github.com/MKhiriev/go-session-auth/internal/session"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-session-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	sessions, err := session.NewStore(ctx, cfg, storages.UserRepository, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	if closer, ok := sessions.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Err(err).Msg("error closing session store")
			}
		}()
	}

	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	strategy, err := auth.New(cfg.Auth, sessions, storages.UserRepository, hasher)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth strategy")
	}

	services := service.NewServices(storages, sessions, hasher, log)

	handlers, err := handler.NewHandlers(services, strategy, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkersFromConfig(cfg.Workers, sessions, log)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
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
