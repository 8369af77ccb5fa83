package http

import (
	"context"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/models"
)

// BiometricAgent answers capability queries and challenges.
type BiometricAgent interface {
	Capability(ctx context.Context) models.BiometricCapability
	Answer(ctx context.Context, req models.ChallengeRequest) (models.ChallengeResponse, error)
}

type Handler struct {
	agent BiometricAgent

	logger *logger.Logger
}

func NewHandler(agent BiometricAgent, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		agent:  agent,
		logger: logger,
	}
}
