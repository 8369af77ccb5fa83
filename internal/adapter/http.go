// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/utils"
	"github.com/MKhiriev/go-wallet-lock/internal/validators"
	"github.com/MKhiriev/go-wallet-lock/models"
)

type httpBiometricAdapter struct {
	client    *utils.HTTPClient
	ids       *utils.UUIDGenerator
	validator validators.Validator

	signKey string

	logger *logger.Logger
}

// NewHTTPBiometricAdapter constructs an HTTP/REST implementation of
// [BiometricPlatform] backed by a biometric agent. It normalises and validates
// the agent address from cfg.AgentAddress and configures the underlying HTTP
// client with the resolved base URL and request timeout.
//
// Every challenge answer must be a token signed with cfg.SignKey that echoes
// the challenge id sent with the request.
func NewHTTPBiometricAdapter(cfg config.ClientBiometric, logger *logger.Logger) (BiometricPlatform, error) {
	baseURL, err := normalizeBaseURL(cfg.AgentAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid biometric agent address: %w", err)
	}
	if cfg.SignKey == "" {
		return nil, fmt.Errorf("biometric agent sign key is empty")
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpBiometricAdapter{
		client:    client,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewBiometricValidator(),
		signKey:   cfg.SignKey,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Capability implements [BiometricPlatform]. It GETs
// /api/biometric/capability and decodes the agent's answer.
func (h *httpBiometricAdapter) Capability(ctx context.Context) (models.BiometricCapability, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/biometric/capability")
	if err != nil {
		return models.BiometricCapability{}, fmt.Errorf("capability request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BiometricCapability{}, err
	}

	var wire models.BiometricCapability
	if err = json.Unmarshal(resp.Body(), &wire); err != nil {
		return models.BiometricCapability{}, fmt.Errorf("decode capability response: %w", err)
	}
	if err = h.validator.Validate(ctx, wire); err != nil {
		return models.BiometricCapability{}, fmt.Errorf("%w: %w", ErrInvalidCapability, err)
	}

	return models.NewBiometricCapability(wire.Available, models.ParseBiometricKind(wire.KindName)), nil
}

// Evaluate implements [BiometricPlatform]. It POSTs a fresh challenge to
// /api/biometric/challenge and verifies the signed answer. An answer that
// does not verify is reported as [models.BiometricOtherFailure]
// together with [ErrInvalidChallengeToken], never as success.
func (h *httpBiometricAdapter) Evaluate(ctx context.Context, reason string) (models.BiometricResult, error) {
	challenge := models.ChallengeRequest{ChallengeID: h.ids.Generate(), Reason: reason}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(challenge).
		Post("/api/biometric/challenge")
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return models.BiometricUserCancelled, nil
		}
		return models.BiometricOtherFailure, fmt.Errorf("challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BiometricOtherFailure, err
	}

	var answer models.ChallengeResponse
	if err = json.Unmarshal(resp.Body(), &answer); err != nil {
		return models.BiometricOtherFailure, fmt.Errorf("decode challenge response: %w", err)
	}

	token, err := utils.ValidateChallengeToken(answer.Token, h.signKey, models.ChallengeIssuer, challenge.ChallengeID)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "httpBiometricAdapter.Evaluate").
			Str("challenge_id", challenge.ChallengeID).
			Msg("rejected biometric challenge answer")
		return models.BiometricOtherFailure, fmt.Errorf("%w: %w", ErrInvalidChallengeToken, err)
	}

	return token.BiometricResult(), nil
}
