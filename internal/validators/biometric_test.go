// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wallet-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validChallengeID = "0190b6a2-7c1e-7d3a-9f4b-2f5c8e1a6d90"

func TestNewBiometricValidator(t *testing.T) {
	v := NewBiometricValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewBiometricValidator()
	ctx := context.Background()

	req := models.ChallengeRequest{ChallengeID: validChallengeID, Reason: "Unlock your wallet"}
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	capability := models.NewBiometricCapability(true, models.BiometricFingerprint)
	assert.NoError(t, v.Validate(ctx, capability))
	assert.NoError(t, v.Validate(ctx, &capability))

	assert.ErrorIs(t, v.Validate(ctx, "challenge"), ErrUnsupportedType)
}

func TestValidate_ChallengeRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ChallengeRequest
		fields  []string
		wantErr error
	}{
		{
			name: "valid",
			req:  models.ChallengeRequest{ChallengeID: validChallengeID, Reason: "Unlock"},
		},
		{
			name:    "challenge id is not a uuid",
			req:     models.ChallengeRequest{ChallengeID: "42", Reason: "Unlock"},
			wantErr: ErrInvalidChallengeID,
		},
		{
			name:    "empty reason",
			req:     models.ChallengeRequest{ChallengeID: validChallengeID},
			wantErr: ErrEmptyReason,
		},
		{
			name:    "reason too long",
			req:     models.ChallengeRequest{ChallengeID: validChallengeID, Reason: strings.Repeat("я", MaxReasonLength+1)},
			wantErr: ErrReasonTooLong,
		},
		{
			name: "reason at the limit counts characters",
			req:  models.ChallengeRequest{ChallengeID: validChallengeID, Reason: strings.Repeat("я", MaxReasonLength)},
		},
		{
			name:   "scoped to the challenge id",
			req:    models.ChallengeRequest{ChallengeID: validChallengeID},
			fields: []string{FieldChallengeID},
		},
		{
			name:    "unknown field",
			req:     models.ChallengeRequest{ChallengeID: validChallengeID, Reason: "Unlock"},
			fields:  []string{"nonce"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewBiometricValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Capability(t *testing.T) {
	tests := []struct {
		name       string
		capability models.BiometricCapability
		wantErr    error
	}{
		{name: "face", capability: models.NewBiometricCapability(true, models.BiometricFace)},
		{name: "none", capability: models.NewBiometricCapability(false, models.BiometricNone)},
		{
			name:       "unknown kind",
			capability: models.BiometricCapability{Available: true, KindName: "retina"},
			wantErr:    ErrUnknownBiometricKind,
		},
		{
			name:       "available without kind",
			capability: models.BiometricCapability{Available: true, KindName: "none"},
			wantErr:    ErrInconsistentCapability,
		},
	}

	v := NewBiometricValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.capability)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
