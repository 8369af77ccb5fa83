package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty DSN or an in-memory DSN,
	// which would not survive a restart.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing hash pepper.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLockConfigs indicates a non-positive countdown interval.
	ErrInvalidLockConfigs = errors.New("invalid lock configuration")
	// ErrInvalidBiometricConfigs indicates an agent address without a
	// signing key.
	ErrInvalidBiometricConfigs = errors.New("invalid biometric configuration")
	// ErrInvalidAgentConfigs indicates a missing listen address or signing
	// key for the biometric agent.
	ErrInvalidAgentConfigs = errors.New("invalid agent configuration")
)
