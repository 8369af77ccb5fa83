package config

import (
	"fmt"
	"time"
)

// Defaults applied when no source sets a value.
const (
	DefaultPollInterval     = time.Second
	DefaultBiometricReason  = "Unlock your wallet"
	DefaultBiometricTimeout = 60 * time.Second
	DefaultAgentAddress     = "localhost:7465"
)

// ClientApp holds client-side application secrets.
type ClientApp struct {
	// HashKey is the passcode hash pepper.
	HashKey string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientLock contains lock screen settings.
type ClientLock struct {
	// PollInterval is the countdown refresh period.
	PollInterval time.Duration
	// BiometricReason is passed to every biometric challenge.
	BiometricReason string
}

// ClientBiometric contains the biometric agent connection settings.
type ClientBiometric struct {
	// AgentAddress is the agent base URL; empty disables biometrics.
	AgentAddress string
	// RequestTimeout bounds one agent request.
	RequestTimeout time.Duration
	// SignKey verifies signed challenge results.
	SignKey string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Storage   ClientStorage
	Lock      ClientLock
	Biometric ClientBiometric
}

// AgentConfig is the configuration of the development biometric agent.
type AgentConfig struct {
	Address string
	Kind    string
	Result  string
	SignKey string
}

// GetClientConfig loads [StructuredConfig], applies client defaults, keeps
// only the fields relevant to the client runtime and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// GetAgentConfig loads [StructuredConfig] and narrows it to [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := newAgentConfig(cfg)

	return agentCfg, agentCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Lock: ClientLock{
			PollInterval:    cfg.Lock.PollInterval,
			BiometricReason: cfg.Lock.BiometricReason,
		},
		Biometric: ClientBiometric{
			AgentAddress:   cfg.Biometric.AgentAddress,
			RequestTimeout: cfg.Biometric.RequestTimeout,
			SignKey:        cfg.Biometric.SignKey,
		},
	}

	if clientCfg.Lock.PollInterval == 0 {
		clientCfg.Lock.PollInterval = DefaultPollInterval
	}
	if clientCfg.Lock.BiometricReason == "" {
		clientCfg.Lock.BiometricReason = DefaultBiometricReason
	}
	if clientCfg.Biometric.RequestTimeout == 0 {
		clientCfg.Biometric.RequestTimeout = DefaultBiometricTimeout
	}

	return clientCfg
}

func newAgentConfig(cfg *StructuredConfig) *AgentConfig {
	agentCfg := &AgentConfig{
		Address: cfg.Agent.Address,
		Kind:    cfg.Agent.Kind,
		Result:  cfg.Agent.Result,
		SignKey: cfg.Biometric.SignKey,
	}

	if agentCfg.Address == "" {
		agentCfg.Address = DefaultAgentAddress
	}

	return agentCfg
}
