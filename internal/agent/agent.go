// Package agent implements a development stand-in for the platform biometric
// facility. It answers every challenge with a scripted outcome signed with the
// shared key, so the client can be exercised without biometric hardware.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/utils"
	"github.com/MKhiriev/go-wallet-lock/internal/validators"
	"github.com/MKhiriev/go-wallet-lock/models"
)

// AnswerTTL bounds how long a signed answer stays acceptable.
const AnswerTTL = 30 * time.Second

var ErrInvalidChallenge = errors.New("invalid biometric challenge")

// Agent holds the scripted capability and result.
type Agent struct {
	capability models.BiometricCapability
	result     models.BiometricResult
	signKey    string
	validator  validators.Validator

	logger *logger.Logger
}

// NewAgent builds an agent from cfg. An empty kind means face and an empty
// result means success; kind "none" makes the agent report no hardware.
func NewAgent(cfg config.AgentConfig, logger *logger.Logger) (*Agent, error) {
	if cfg.SignKey == "" {
		return nil, fmt.Errorf("%w: empty sign key", config.ErrInvalidAgentConfigs)
	}

	kind := models.BiometricFace
	if cfg.Kind != "" {
		kind = models.ParseBiometricKind(cfg.Kind)
	}
	result := models.BiometricSuccess
	if cfg.Result != "" {
		result = models.ParseBiometricResult(cfg.Result)
	}

	return &Agent{
		capability: models.NewBiometricCapability(true, kind),
		result:     result,
		signKey:    cfg.SignKey,
		validator:  validators.NewBiometricValidator(),
		logger:     logger,
	}, nil
}

// Capability returns the scripted capability.
func (a *Agent) Capability(ctx context.Context) models.BiometricCapability {
	return a.capability
}

// Answer signs the scripted result for req. Without hardware every
// challenge is answered with other_failure.
func (a *Agent) Answer(ctx context.Context, req models.ChallengeRequest) (models.ChallengeResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "Agent.Answer").Msg("rejected biometric challenge")
		return models.ChallengeResponse{}, fmt.Errorf("%w: %w", ErrInvalidChallenge, err)
	}

	result := a.result
	if !a.capability.Available {
		result = models.BiometricOtherFailure
	}

	token, err := utils.GenerateChallengeToken(models.ChallengeIssuer, req.ChallengeID, result, AnswerTTL, a.signKey)
	if err != nil {
		log.Err(err).Str("func", "Agent.Answer").Msg("error signing challenge answer")
		return models.ChallengeResponse{}, fmt.Errorf("sign challenge answer: %w", err)
	}

	log.Info().Str("func", "Agent.Answer").
		Str("challenge_id", req.ChallengeID).
		Str("reason", req.Reason).
		Str("result", result.String()).
		Msg("answered biometric challenge")

	return models.ChallengeResponse{Token: token.String()}, nil
}
