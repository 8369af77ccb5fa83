// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/secure_storage_mock.go -package=mock

// SecureStorage is the durable key/value store backing the wallet lock. It
// holds the credential hash, the lockout end timestamp and the failure count,
// and must survive process restarts.
type SecureStorage interface {
	// Get returns the value stored under key, or [ErrItemNotFound].
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Apply commits every operation of batch atomically: either all of them
	// are visible afterwards or none is.
	Apply(ctx context.Context, batch *Batch) error
}
