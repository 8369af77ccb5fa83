package service

import "errors"

var (
	ErrInvalidCredentialFormat = errors.New("passcode must be 4 to 6 digits")
	ErrCredentialMismatch      = errors.New("passcode confirmation does not match")
	ErrNoCredential            = errors.New("no passcode is set")
	ErrVerificationFailed      = errors.New("wrong passcode")
	ErrLockedOut               = errors.New("locked out")
	ErrPersistence             = errors.New("secure storage failure")

	ErrBiometricUnavailable = errors.New("biometric authentication is unavailable")
	ErrPlatformLockout      = errors.New("biometric authentication is locked by the platform")
	ErrBiometricFailed      = errors.New("biometric authentication failed")
	ErrBiometricPending     = errors.New("biometric challenge in progress")

	ErrVerificationInProgress = errors.New("passcode verification in progress")
	ErrSessionUnlocked        = errors.New("session is already unlocked")
	ErrNotPresented           = errors.New("lock screen is not presented")
	ErrInvalidDigit           = errors.New("input is not a digit")
	ErrSetupNotStarted        = errors.New("passcode entry step was not completed")
)
