// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-lock/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialStore holds the hashed wallet passcode.
type CredentialStore interface {
	// Set validates passcode, hashes it and commits it. The same commit
	// resets the failure count and clears any lockout window, so either the
	// old credential stays fully valid or the new one is in place with a
	// clean ledger. Returns [ErrInvalidCredentialFormat] or [ErrPersistence].
	Set(ctx context.Context, passcode string) error

	// Verify compares passcode with the stored hash in constant time. It has
	// no side effects. Returns [ErrNoCredential] when nothing is stored and
	// [ErrPersistence] when the store cannot be read.
	Verify(ctx context.Context, passcode string) (bool, error)

	// Exists reports whether a credential is stored.
	Exists(ctx context.Context) (bool, error)

	// Length returns the digit count of the stored credential.
	Length(ctx context.Context) (int, error)
}

// AttemptLedger counts consecutive failed verifications. The count is
// persisted so a restart does not grant a fresh set of attempts.
type AttemptLedger interface {
	// RecordFailure increments the count and returns the new value.
	RecordFailure(ctx context.Context) (int, error)

	// Reset sets the count to zero.
	Reset(ctx context.Context) error

	// Count returns the current count.
	Count(ctx context.Context) (int, error)
}

// LockoutStateStore persists the end of the active lockout window.
type LockoutStateStore interface {
	// IsLocked returns the remaining lockout time when a window ends after
	// now. An expired window is removed and reported as unlocked.
	IsLocked(ctx context.Context, now time.Time) (time.Duration, bool, error)

	// Apply persists a window ending at now+d, replacing any prior window.
	Apply(ctx context.Context, d time.Duration, now time.Time) error

	// Clear removes the window.
	Clear(ctx context.Context) error
}

// BiometricGate is the service view of the platform biometric facility.
// It never fails: transport problems degrade to "unavailable" or
// [models.BiometricOtherFailure].
type BiometricGate interface {
	// Capability reports the current biometric capability.
	Capability(ctx context.Context) models.BiometricCapability

	// Challenge prompts the user with reason and returns exactly one
	// terminal result. Cancelling ctx yields [models.BiometricUserCancelled].
	Challenge(ctx context.Context, reason string) models.BiometricResult
}
