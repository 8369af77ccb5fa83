package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet-lock/models"
)

type unavailablePlatform struct{}

// NewUnavailableBiometricAdapter returns a platform without biometric
// hardware. It is used when no biometric agent is configured.
func NewUnavailableBiometricAdapter() BiometricPlatform {
	return unavailablePlatform{}
}

func (unavailablePlatform) Capability(context.Context) (models.BiometricCapability, error) {
	return models.NewBiometricCapability(false, models.BiometricNone), nil
}

func (unavailablePlatform) Evaluate(context.Context, string) (models.BiometricResult, error) {
	return models.BiometricOtherFailure, nil
}
