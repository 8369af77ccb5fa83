// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Passcode length bounds, inclusive.
const (
	MinPasscodeLength = 4
	MaxPasscodeLength = 6
)

// PasscodeCredential is the at-rest form of the wallet passcode. The plaintext
// digits never leave the hashing boundary; only SecretHash and Salt are stored.
type PasscodeCredential struct {
	// SecretHash is the Argon2id digest of the peppered passcode.
	SecretHash []byte `json:"hash"`
	// Salt is the random per-credential salt.
	Salt []byte `json:"salt"`
	// Length is the number of digits, fixed at creation.
	Length int `json:"length"`
	// Algorithm names the hash scheme so the format can evolve.
	Algorithm string `json:"algorithm"`
}

// IsValidPasscode reports whether s consists of 4 to 6 ASCII digits.
func IsValidPasscode(s string) bool {
	if len(s) < MinPasscodeLength || len(s) > MaxPasscodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
