package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/field-sync/internal/config"
	"github.com/MKhiriev/field-sync/internal/handler"
	"github.com/MKhiriev/field-sync/internal/logger"
	"github.com/MKhiriev/field-sync/internal/server"
	"github.com/MKhiriev/field-sync/internal/service"
	"github.com/MKhiriev/field-sync/internal/store"
	"github.com/MKhiriev/field-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	issueTokenFor := flag.String("issue-token", "", "Print a device token for this service provider and exit")
	seedPath := flag.String("seed", "", "JSON file with applications to load before serving")

	log := logger.NewLogger("field-sync-server")
	flags, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing flags")
	}
	if flags.App.Version == "" && buildInfo.Known() {
		flags.App.Version = buildInfo.Version
	}

	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	if *issueTokenFor != "" {
		if err = issueToken(ctx, cfg, *issueTokenFor, log); err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		return
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if *seedPath != "" {
		if err = seedApplications(ctx, storages.ApplicationRepository, *seedPath); err != nil {
			log.Fatal().Err(err).Msg("error seeding applications")
		}
		log.Info().Str("file", *seedPath).Msg("applications seeded")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.HTTP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.HTTP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func issueToken(ctx context.Context, cfg *config.ServerConfig, serviceProviderID string, log *logger.Logger) error {
	token, err := service.NewAuthService(cfg.Auth, log).IssueToken(ctx, serviceProviderID)
	if err != nil {
		return err
	}
	fmt.Println(token.String())
	return nil
}

func seedApplications(ctx context.Context, repo store.ApplicationRepository, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var apps []models.Application
	if err = json.Unmarshal(raw, &apps); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	return repo.Upsert(ctx, apps...)
}
