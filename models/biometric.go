// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BiometricKind is the biometric sensor type reported by the platform.
type BiometricKind int

const (
	BiometricNone BiometricKind = iota
	BiometricFace
	BiometricFingerprint
	BiometricIris
)

// String returns the wire name of the kind.
func (k BiometricKind) String() string {
	switch k {
	case BiometricFace:
		return "face"
	case BiometricFingerprint:
		return "fingerprint"
	case BiometricIris:
		return "iris"
	default:
		return "none"
	}
}

// ParseBiometricKind maps a wire name back to a [BiometricKind]. Unknown
// names map to [BiometricNone].
func ParseBiometricKind(s string) BiometricKind {
	switch s {
	case "face":
		return BiometricFace
	case "fingerprint":
		return BiometricFingerprint
	case "iris":
		return BiometricIris
	default:
		return BiometricNone
	}
}

// BiometricCapability describes whether a biometric challenge can be issued
// right now. It is recomputed on every lock screen presentation because the
// platform may disable biometrics at any time.
type BiometricCapability struct {
	Available bool          `json:"available"`
	Kind      BiometricKind `json:"-"`
	KindName  string        `json:"kind"`
}

// NewBiometricCapability builds a capability value with a consistent kind name.
// A capability with kind none is never available.
func NewBiometricCapability(available bool, kind BiometricKind) BiometricCapability {
	if kind == BiometricNone {
		available = false
	}
	return BiometricCapability{Available: available, Kind: kind, KindName: kind.String()}
}

// BiometricResult is the single terminal outcome of a biometric challenge.
type BiometricResult int

const (
	BiometricSuccess BiometricResult = iota
	BiometricUserCancelled
	BiometricPlatformLockout
	BiometricOtherFailure
)

// String returns the wire name of the result.
func (r BiometricResult) String() string {
	switch r {
	case BiometricSuccess:
		return "success"
	case BiometricUserCancelled:
		return "user_cancelled"
	case BiometricPlatformLockout:
		return "platform_lockout"
	default:
		return "other_failure"
	}
}

// ParseBiometricResult maps a wire name back to a [BiometricResult]. Anything
// unrecognised is an [BiometricOtherFailure]; it never maps to success.
func ParseBiometricResult(s string) BiometricResult {
	switch s {
	case "success":
		return BiometricSuccess
	case "user_cancelled":
		return BiometricUserCancelled
	case "platform_lockout":
		return BiometricPlatformLockout
	default:
		return BiometricOtherFailure
	}
}
