package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wallet-lock/internal/adapter"
	"github.com/MKhiriev/go-wallet-lock/internal/client"
	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/crypto"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/service"
	"github.com/MKhiriev/go-wallet-lock/internal/store"
	"github.com/MKhiriev/go-wallet-lock/internal/tui"
	"github.com/MKhiriev/go-wallet-lock/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("wallet-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create secure storage")
	}

	platform := adapter.NewUnavailableBiometricAdapter()
	if cfg.Biometric.AgentAddress != "" {
		platform, err = adapter.NewHTTPBiometricAdapter(cfg.Biometric, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create biometric adapter")
		}
	}

	services := service.NewClientServices(
		storages.SecureStorage,
		crypto.NewPasscodeHasher(cfg.App.HashKey),
		platform,
		cfg.Lock,
		log,
	)

	ui, err := tui.New(services, cfg.Lock, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
