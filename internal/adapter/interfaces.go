// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for reaching the
// platform biometric facility.
//
// The primary abstraction is [BiometricPlatform], which decouples the service
// layer from the way a biometric prompt is actually shown. The package ships
// an HTTP/REST implementation talking to a biometric agent
// ([NewHTTPBiometricAdapter]) and a platform that never has biometrics
// ([NewUnavailableBiometricAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/biometric_platform_mock.go -package=mock

// BiometricPlatform is the OS-level biometric facility.
type BiometricPlatform interface {
	// Capability reports whether biometric hardware is present and enrolled
	// and which kind it is. It is cheap and side-effect free.
	Capability(ctx context.Context) (models.BiometricCapability, error)

	// Evaluate shows the platform prompt with reason and blocks until the
	// user answers or ctx is done. The returned error describes transport
	// failures only; a refused or failed scan is reported through the
	// result.
	Evaluate(ctx context.Context, reason string) (models.BiometricResult, error)
}
