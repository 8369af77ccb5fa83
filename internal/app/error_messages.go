// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the lock
// screen services and the terminal UI.
//
// All Msg* constants are the human-readable lines shown to the user after a
// failed action. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgWrongPasscode is shown after an incorrect passcode that did not
	// open a lockout window.
	MsgWrongPasscode = "Wrong passcode. Try again."

	// MsgLockedOut is shown while a lockout window is active. The UI appends
	// the remaining time.
	MsgLockedOut = "Too many attempts. Try again later."

	// MsgInvalidPasscodeFormat is shown when a new passcode is not 4 to 6
	// digits.
	MsgInvalidPasscodeFormat = "Passcode must be 4 to 6 digits."

	// MsgPasscodeMismatch is shown when the confirmation entry differs from
	// the first entry.
	MsgPasscodeMismatch = "Passcodes do not match. Start again."

	// MsgStorageFailure is shown when the secure storage could not be read
	// or written. Nothing was changed and the action can be retried.
	MsgStorageFailure = "Could not access secure storage. Please try again."

	// MsgBiometricUnavailable is shown when biometrics cannot be used on
	// this device.
	MsgBiometricUnavailable = "Biometric unlock is not available. Use your passcode."

	// MsgBiometricLockout is shown once the platform disabled biometrics for
	// this session.
	MsgBiometricLockout = "Biometrics are locked. Use your passcode."

	// MsgBiometricFailed is shown after a biometric scan that did not
	// succeed.
	MsgBiometricFailed = "Biometric unlock failed. Try again or use your passcode."

	// MsgNoPasscode is shown when the lock screen is presented before a
	// passcode was created.
	MsgNoPasscode = "No passcode is set."
)
