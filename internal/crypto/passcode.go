// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength = 16
	algorithm  = "argon2id-hmac-sha256"
)

// passcodeHasher is the private implementation of [PasscodeHasher].
type passcodeHasher struct {
	pepper []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// Option tunes a [PasscodeHasher].
type Option func(*passcodeHasher)

// WithArgonParams overrides the Argon2id cost parameters. Memory is in KiB.
func WithArgonParams(time, memory uint32, threads uint8) Option {
	return func(h *passcodeHasher) {
		h.argonTime = time
		h.argonMemory = memory
		h.argonThreads = threads
	}
}

// NewPasscodeHasher constructs a [PasscodeHasher] keyed with pepper, using
// the Argon2id parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasscodeHasher(pepper string, opts ...Option) PasscodeHasher {
	h := &passcodeHasher{
		pepper:       []byte(pepper),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GenerateSalt implements [PasscodeHasher]. It reads 16 random bytes from the
// OS CSPRNG.
func (h *passcodeHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// Hash implements [PasscodeHasher].
func (h *passcodeHasher) Hash(passcode string, salt []byte) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(passcode))
	peppered := mac.Sum(nil)

	return argon2.IDKey(peppered, salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)
}

// Compare implements [PasscodeHasher].
func (h *passcodeHasher) Compare(passcode string, salt, secretHash []byte) bool {
	candidate := h.Hash(passcode, salt)
	return subtle.ConstantTimeCompare(candidate, secretHash) == 1
}

// Algorithm implements [PasscodeHasher].
func (h *passcodeHasher) Algorithm() string {
	return algorithm
}
