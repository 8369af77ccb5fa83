// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LockState is a state of the authentication state machine.
type LockState int

const (
	StateIdle LockState = iota
	StateAccumulating
	StateVerifying
	StateLockedOut
	StateUnlocked
)

func (s LockState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAccumulating:
		return "accumulating"
	case StateVerifying:
		return "verifying"
	case StateLockedOut:
		return "locked_out"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// LockSnapshot is what the presentation layer renders. It never carries the
// entered digits themselves, only how many were entered.
type LockSnapshot struct {
	// Seq increases with every published snapshot so a consumer can drop
	// deliveries that arrive out of order.
	Seq   uint64
	State LockState
	// Entered is the number of digits in the current attempt.
	Entered int
	// Length is the stored passcode length (0 when no credential exists).
	Length int
	// Remaining is the lockout time left while State is StateLockedOut.
	Remaining time.Duration
	// Message is the single user-visible error for the last failed action.
	Message string
	// Biometric is the capability observed on presentation.
	Biometric BiometricCapability
	// BiometricDisabled is set once the platform reported a lockout during
	// this session.
	BiometricDisabled bool
	// BiometricPending is set while a challenge is in flight.
	BiometricPending bool
}

// BiometricUsable reports whether the biometric path can be offered.
func (s LockSnapshot) BiometricUsable() bool {
	return s.Biometric.Available && !s.BiometricDisabled && s.State != StateLockedOut && s.State != StateUnlocked
}
