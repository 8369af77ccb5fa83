// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level secrets.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the durable secure store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Lock holds lock screen behaviour settings.
	Lock Lock `envPrefix:"LOCK_"`

	// Biometric holds the client side of the biometric agent integration.
	Biometric Biometric `envPrefix:"BIOMETRIC_"`

	// Agent holds settings of the development biometric agent.
	Agent Agent `envPrefix:"AGENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level secrets.
type App struct {
	// HashKey is the pepper mixed into the passcode hash with HMAC-SHA256
	// before Argon2id. Changing it invalidates the stored passcode.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite secure store.
type DB struct {
	// DSN is the SQLite database file (e.g. "/home/me/.wallet/lock.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Lock holds lock screen settings.
type Lock struct {
	// PollInterval is how often the lockout countdown is refreshed while the
	// lock screen is visible.
	// Env: LOCK_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// BiometricReason is the localized reason shown by the platform prompt.
	// Env: LOCK_BIOMETRIC_REASON
	BiometricReason string `env:"BIOMETRIC_REASON"`
}

// Biometric holds the client settings for talking to the biometric agent.
type Biometric struct {
	// AgentAddress is the base URL of the biometric agent. Empty means
	// biometrics are unavailable.
	// Env: BIOMETRIC_AGENT_ADDRESS
	AgentAddress string `env:"AGENT_ADDRESS"`

	// RequestTimeout bounds a single agent request, including the time the
	// user spends on the platform prompt.
	// Env: BIOMETRIC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SignKey is the shared HS256 key used to sign challenge results.
	// Env: BIOMETRIC_SIGN_KEY
	SignKey string `env:"SIGN_KEY"`
}

// Agent holds settings of the development biometric agent.
type Agent struct {
	// Address is the listen address in "host:port" format.
	// Env: AGENT_ADDRESS
	Address string `env:"ADDRESS"`

	// Kind is the simulated sensor: face, fingerprint, iris or none.
	// Env: AGENT_KIND
	Kind string `env:"KIND"`

	// Result is the scripted challenge outcome: success, user_cancelled,
	// platform_lockout or other_failure.
	// Env: AGENT_RESULT
	Result string `env:"RESULT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources: environment variables, then command-line flags, then the JSON
// file whose path is resolved from the first two.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
