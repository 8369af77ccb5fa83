// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",
	"APP_HASH_KEY",
	"STORAGE_DB_DATABASE_URI",
	"LOCK_POLL_INTERVAL",
	"LOCK_BIOMETRIC_REASON",
	"BIOMETRIC_AGENT_ADDRESS",
	"BIOMETRIC_REQUEST_TIMEOUT",
	"BIOMETRIC_SIGN_KEY",
	"AGENT_ADDRESS",
	"AGENT_KIND",
	"AGENT_RESULT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG":                    "/path/to/config.json",
		"APP_HASH_KEY":              "pepper",
		"STORAGE_DB_DATABASE_URI":   "/tmp/lock.db",
		"LOCK_POLL_INTERVAL":        "2s",
		"LOCK_BIOMETRIC_REASON":     "Unlock",
		"BIOMETRIC_AGENT_ADDRESS":   "http://localhost:7465",
		"BIOMETRIC_REQUEST_TIMEOUT": "45s",
		"BIOMETRIC_SIGN_KEY":        "shared",
		"AGENT_ADDRESS":             "localhost:7465",
		"AGENT_KIND":                "face",
		"AGENT_RESULT":              "success",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "pepper", cfg.App.HashKey)
	assert.Equal(t, "/tmp/lock.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Lock.PollInterval)
	assert.Equal(t, "Unlock", cfg.Lock.BiometricReason)
	assert.Equal(t, "http://localhost:7465", cfg.Biometric.AgentAddress)
	assert.Equal(t, 45*time.Second, cfg.Biometric.RequestTimeout)
	assert.Equal(t, "shared", cfg.Biometric.SignKey)
	assert.Equal(t, "localhost:7465", cfg.Agent.Address)
	assert.Equal(t, "face", cfg.Agent.Kind)
	assert.Equal(t, "success", cfg.Agent.Result)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"LOCK_POLL_INTERVAL": "every second"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
