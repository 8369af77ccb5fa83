package main

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-lock/internal/agent"
	"github.com/MKhiriev/go-wallet-lock/internal/config"
	handler "github.com/MKhiriev/go-wallet-lock/internal/handler/http"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("biometric-agent")
	cfg, err := config.GetAgentConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Address).Str("kind", cfg.Kind).Str("result", cfg.Result).Msg("received configs")

	biometricAgent, err := agent.NewAgent(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating agent")
	}

	srv, err := server.NewServer(handler.NewHandler(biometricAgent, log).Init(), cfg.Address, log)
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
