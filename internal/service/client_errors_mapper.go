// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-wallet-lock/internal/app"
)

// UserMessage translates a lock screen error into the single line shown to
// the user. Errors describing ignored input (a pending challenge, an
// unlocked session, a non-digit key) have no message.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPersistence):
		return app.MsgStorageFailure
	case errors.Is(err, ErrLockedOut):
		return app.MsgLockedOut
	case errors.Is(err, ErrVerificationFailed):
		return app.MsgWrongPasscode
	case errors.Is(err, ErrInvalidCredentialFormat):
		return app.MsgInvalidPasscodeFormat
	case errors.Is(err, ErrCredentialMismatch):
		return app.MsgPasscodeMismatch
	case errors.Is(err, ErrPlatformLockout):
		return app.MsgBiometricLockout
	case errors.Is(err, ErrBiometricUnavailable):
		return app.MsgBiometricUnavailable
	case errors.Is(err, ErrBiometricFailed):
		return app.MsgBiometricFailed
	case errors.Is(err, ErrNoCredential):
		return app.MsgNoPasscode
	default:
		return ""
	}
}
