package agent

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/utils"
	"github.com/MKhiriev/go-wallet-lock/internal/validators"
	"github.com/MKhiriev/go-wallet-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.AgentConfig
		wantErr       bool
		wantAvailable bool
		wantKind      models.BiometricKind
		wantResult    models.BiometricResult
	}{
		{
			name:          "defaults",
			cfg:           config.AgentConfig{SignKey: "k"},
			wantAvailable: true,
			wantKind:      models.BiometricFace,
			wantResult:    models.BiometricSuccess,
		},
		{
			name:          "scripted fingerprint lockout",
			cfg:           config.AgentConfig{SignKey: "k", Kind: "fingerprint", Result: "platform_lockout"},
			wantAvailable: true,
			wantKind:      models.BiometricFingerprint,
			wantResult:    models.BiometricPlatformLockout,
		},
		{
			name:       "no hardware",
			cfg:        config.AgentConfig{SignKey: "k", Kind: "none"},
			wantKind:   models.BiometricNone,
			wantResult: models.BiometricSuccess,
		},
		{
			name:    "missing sign key",
			cfg:     config.AgentConfig{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAgent(tt.cfg, logger.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidAgentConfigs)
				return
			}
			require.NoError(t, err)

			c := a.Capability(context.Background())
			assert.Equal(t, tt.wantAvailable, c.Available)
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantResult, a.result)
		})
	}
}

func TestAgent_Answer(t *testing.T) {
	a, err := NewAgent(config.AgentConfig{SignKey: "k", Result: "user_cancelled"}, logger.Nop())
	require.NoError(t, err)
	cid := utils.NewUUIDGenerator().Generate()

	resp, err := a.Answer(context.Background(), models.ChallengeRequest{ChallengeID: cid, Reason: "Unlock"})
	require.NoError(t, err)

	token, err := utils.ValidateChallengeToken(resp.Token, "k", models.ChallengeIssuer, cid)
	require.NoError(t, err)
	assert.Equal(t, models.BiometricUserCancelled, token.BiometricResult())
}

func TestAgent_Answer_NoHardwareFails(t *testing.T) {
	a, err := NewAgent(config.AgentConfig{SignKey: "k", Kind: "none"}, logger.Nop())
	require.NoError(t, err)
	cid := utils.NewUUIDGenerator().Generate()

	resp, err := a.Answer(context.Background(), models.ChallengeRequest{ChallengeID: cid, Reason: "Unlock"})
	require.NoError(t, err)

	token, err := utils.ValidateChallengeToken(resp.Token, "k", models.ChallengeIssuer, cid)
	require.NoError(t, err)
	assert.Equal(t, models.BiometricOtherFailure, token.BiometricResult())
}

func TestAgent_Answer_InvalidChallenge(t *testing.T) {
	a, err := NewAgent(config.AgentConfig{SignKey: "k"}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Answer(context.Background(), models.ChallengeRequest{ChallengeID: "42", Reason: "Unlock"})
	assert.ErrorIs(t, err, ErrInvalidChallenge)
	assert.ErrorIs(t, err, validators.ErrInvalidChallengeID)

	_, err = a.Answer(context.Background(), models.ChallengeRequest{ChallengeID: utils.NewUUIDGenerator().Generate()})
	assert.ErrorIs(t, err, ErrInvalidChallenge)
	assert.ErrorIs(t, err, validators.ErrEmptyReason)
}
