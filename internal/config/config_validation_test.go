package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(&StructuredConfig{
		App:     App{HashKey: "pepper"},
		Storage: Storage{DB: DB{DSN: "/tmp/lock.db"}},
	})
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := validClientConfig()

	assert.Equal(t, DefaultPollInterval, cfg.Lock.PollInterval)
	assert.Equal(t, DefaultBiometricReason, cfg.Lock.BiometricReason)
	assert.Equal(t, DefaultBiometricTimeout, cfg.Biometric.RequestTimeout)
	assert.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *ClientConfig)
		want   error
	}{
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "no hash key", mutate: func(c *ClientConfig) { c.App.HashKey = "" }, want: ErrInvalidAppConfigs},
		{name: "negative interval", mutate: func(c *ClientConfig) { c.Lock.PollInterval = -time.Second }, want: ErrInvalidLockConfigs},
		{name: "agent without key", mutate: func(c *ClientConfig) { c.Biometric.AgentAddress = "http://localhost:7465" }, want: ErrInvalidBiometricConfigs},
		{name: "agent with key", mutate: func(c *ClientConfig) {
			c.Biometric.AgentAddress = "http://localhost:7465"
			c.Biometric.SignKey = "k"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAgentConfig_Validate(t *testing.T) {
	cfg := newAgentConfig(&StructuredConfig{})
	assert.Equal(t, DefaultAgentAddress, cfg.Address)
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAgentConfigs)

	cfg = newAgentConfig(&StructuredConfig{Biometric: Biometric{SignKey: "k"}, Agent: Agent{Kind: "face"}})
	assert.NoError(t, cfg.validate())
	assert.Equal(t, "face", cfg.Kind)
}
