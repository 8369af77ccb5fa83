package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-lock/internal/adapter"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/models"
)

type biometricGate struct {
	platform adapter.BiometricPlatform

	logger *logger.Logger
}

// NewBiometricGate wraps platform into a [BiometricGate].
func NewBiometricGate(platform adapter.BiometricPlatform, logger *logger.Logger) BiometricGate {
	return &biometricGate{platform: platform, logger: logger}
}

func (g *biometricGate) Capability(ctx context.Context) models.BiometricCapability {
	capability, err := g.platform.Capability(ctx)
	if err != nil {
		g.logger.Err(err).Str("func", "biometricGate.Capability").Msg("biometric capability query failed, treating as unavailable")
		return models.NewBiometricCapability(false, models.BiometricNone)
	}
	return capability
}

func (g *biometricGate) Challenge(ctx context.Context, reason string) models.BiometricResult {
	result, err := g.platform.Evaluate(ctx, reason)
	if ctx.Err() != nil {
		return models.BiometricUserCancelled
	}
	if err != nil {
		g.logger.Err(err).Str("func", "biometricGate.Challenge").Msg("biometric challenge failed")
		return models.BiometricOtherFailure
	}

	if result == models.BiometricPlatformLockout {
		g.logger.Warn().Str("func", "biometricGate.Challenge").Msg("platform reported biometric lockout")
	}
	return result
}
