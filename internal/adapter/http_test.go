// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/utils"
	"github.com/MKhiriev/go-wallet-lock/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

func newTestAdapter(t *testing.T, serverURL string) *httpBiometricAdapter {
	t.Helper()
	cfg := config.ClientBiometric{AgentAddress: serverURL, SignKey: testSignKey, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPBiometricAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBiometricAdapter)
}

// challengeServer answers every challenge with a token produced by sign.
func challengeServer(t *testing.T, sign func(req models.ChallengeRequest) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/biometric/challenge", r.URL.Path)

		var req models.ChallengeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, utils.IsValidUUID(req.ChallengeID))

		_, _ = utils.WriteJSON(w, models.ChallengeResponse{Token: sign(req)}, http.StatusOK)
	}))
}

func signedAnswer(t *testing.T, key, challengeID string, result models.BiometricResult) string {
	t.Helper()
	token, err := utils.GenerateChallengeToken(models.ChallengeIssuer, challengeID, result, time.Minute, key)
	require.NoError(t, err)
	return token.String()
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPBiometricAdapter_InvalidConfig(t *testing.T) {
	_, err := NewHTTPBiometricAdapter(config.ClientBiometric{AgentAddress: "", SignKey: "k"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPBiometricAdapter(config.ClientBiometric{AgentAddress: "localhost:7465"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:7465", want: "http://localhost:7465"},
		{raw: " https://agent.local/ ", want: "https://agent.local"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Capability ──────────────────────────────────────────────────────────────

func TestCapability_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/biometric/capability", r.URL.Path)
		_, _ = w.Write([]byte(`{"available":true,"kind":"face"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Capability(context.Background())

	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Equal(t, models.BiometricFace, got.Kind)
}

func TestCapability_UnknownKindRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"available":true,"kind":"retina-scanner-9000"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Capability(context.Background())

	assert.ErrorIs(t, err, ErrInvalidCapability)
	assert.False(t, got.Available)
}

func TestCapability_AvailableWithoutKindRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"available":true,"kind":"none"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Capability(context.Background())

	assert.ErrorIs(t, err, ErrInvalidCapability)
}

func TestCapability_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("sensor offline"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Capability(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestCapability_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Capability(context.Background())

	assert.Error(t, err)
}

// ── Evaluate ────────────────────────────────────────────────────────────────

func TestEvaluate_SignedResults(t *testing.T) {
	for _, want := range []models.BiometricResult{
		models.BiometricSuccess,
		models.BiometricUserCancelled,
		models.BiometricPlatformLockout,
		models.BiometricOtherFailure,
	} {
		t.Run(want.String(), func(t *testing.T) {
			srv := challengeServer(t, func(req models.ChallengeRequest) string {
				assert.Equal(t, "Unlock your wallet", req.Reason)
				return signedAnswer(t, testSignKey, req.ChallengeID, want)
			})
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).Evaluate(context.Background(), "Unlock your wallet")

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEvaluate_WrongKeyIsFailure(t *testing.T) {
	srv := challengeServer(t, func(req models.ChallengeRequest) string {
		return signedAnswer(t, "someone-else", req.ChallengeID, models.BiometricSuccess)
	})
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Evaluate(context.Background(), "reason")

	assert.ErrorIs(t, err, ErrInvalidChallengeToken)
	assert.Equal(t, models.BiometricOtherFailure, got)
}

func TestEvaluate_ReplayedChallengeIsFailure(t *testing.T) {
	srv := challengeServer(t, func(req models.ChallengeRequest) string {
		return signedAnswer(t, testSignKey, "0192f7a0-0000-7000-8000-000000000000", models.BiometricSuccess)
	})
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Evaluate(context.Background(), "reason")

	assert.ErrorIs(t, err, ErrInvalidChallengeToken)
	assert.ErrorIs(t, err, utils.ErrChallengeMismatch)
	assert.Equal(t, models.BiometricOtherFailure, got)
}

func TestEvaluate_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Evaluate(context.Background(), "reason")

	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Equal(t, models.BiometricOtherFailure, got)
}

func TestEvaluate_CancelledContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	got, err := newTestAdapter(t, srv.URL).Evaluate(ctx, "reason")

	require.NoError(t, err)
	assert.Equal(t, models.BiometricUserCancelled, got)
}

// ── unavailable platform ────────────────────────────────────────────────────

func TestUnavailablePlatform(t *testing.T) {
	p := NewUnavailableBiometricAdapter()

	capability, err := p.Capability(context.Background())
	require.NoError(t, err)
	assert.False(t, capability.Available)
	assert.Equal(t, "none", capability.KindName)

	result, err := p.Evaluate(context.Background(), "reason")
	require.NoError(t, err)
	assert.Equal(t, models.BiometricOtherFailure, result)
}
