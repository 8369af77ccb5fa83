// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the client configuration can back a durable lock:
// an on-disk DSN, a hash pepper and a positive countdown interval. An agent
// address without a signing key is rejected because unsigned results could
// not be trusted.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Lock.PollInterval < 0 {
		return ErrInvalidLockConfigs
	}

	if cfg.Biometric.AgentAddress != "" && cfg.Biometric.SignKey == "" {
		return ErrInvalidBiometricConfigs
	}

	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Address == "" || cfg.SignKey == "" {
		return ErrInvalidAgentConfigs
	}

	return nil
}
