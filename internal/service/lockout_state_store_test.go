package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/mock"
	"github.com/MKhiriev/go-wallet-lock/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLockoutStateStore_ApplyAndExpire(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	storage := store.NewMemorySecureStorage()
	lockouts := NewLockoutStateStore(storage, logger.Nop())

	_, locked, err := lockouts.IsLocked(ctx, clock.Now())
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, lockouts.Apply(ctx, 30*time.Second, clock.Now()))

	clock.Advance(10 * time.Second)
	remaining, locked, err := lockouts.IsLocked(ctx, clock.Now())
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 20*time.Second, remaining)

	clock.Advance(20 * time.Second)
	_, locked, err = lockouts.IsLocked(ctx, clock.Now())
	require.NoError(t, err)
	assert.False(t, locked, "a window ending exactly now is expired")

	_, err = storage.Get(ctx, KeyLockoutEnd)
	assert.ErrorIs(t, err, store.ErrItemNotFound, "expired window is removed")
}

func TestLockoutStateStore_ApplyOverwrites(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	lockouts := NewLockoutStateStore(store.NewMemorySecureStorage(), logger.Nop())

	require.NoError(t, lockouts.Apply(ctx, time.Hour, clock.Now()))
	require.NoError(t, lockouts.Apply(ctx, 30*time.Second, clock.Now()))

	remaining, locked, err := lockouts.IsLocked(ctx, clock.Now())
	require.NoError(t, err)
	assert.True(t, locked)
	assert.Equal(t, 30*time.Second, remaining)
}

func TestLockoutStateStore_Clear(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	lockouts := NewLockoutStateStore(store.NewMemorySecureStorage(), logger.Nop())

	require.NoError(t, lockouts.Apply(ctx, time.Minute, clock.Now()))
	require.NoError(t, lockouts.Clear(ctx))
	require.NoError(t, lockouts.Clear(ctx))

	_, locked, err := lockouts.IsLocked(ctx, clock.Now())
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestLockoutStateStore_StoredAsUTC(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemorySecureStorage()
	lockouts := NewLockoutStateStore(storage, logger.Nop())
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.FixedZone("UTC+3", 3*60*60))

	require.NoError(t, lockouts.Apply(ctx, time.Minute, now))

	raw, err := storage.Get(ctx, KeyLockoutEnd)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01T07:01:00Z", string(raw))
}

func TestLockoutStateStore_CorruptedWindowIsDropped(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemorySecureStorage()
	require.NoError(t, storage.Set(ctx, KeyLockoutEnd, []byte("yesterday")))

	_, locked, err := NewLockoutStateStore(storage, logger.Nop()).IsLocked(ctx, time.Now())

	require.NoError(t, err)
	assert.False(t, locked)
	_, err = storage.Get(ctx, KeyLockoutEnd)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestLockoutStateStore_StorageErrors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSecureStorage(ctrl)
	lockouts := NewLockoutStateStore(storage, logger.Nop())
	boom := errors.New("keychain unavailable")

	storage.EXPECT().Get(gomock.Any(), KeyLockoutEnd).Return(nil, boom)
	_, _, err := lockouts.IsLocked(ctx, time.Now())
	assert.ErrorIs(t, err, ErrPersistence)

	storage.EXPECT().Set(gomock.Any(), KeyLockoutEnd, gomock.Any()).Return(boom)
	assert.ErrorIs(t, lockouts.Apply(ctx, time.Minute, time.Now()), ErrPersistence)

	storage.EXPECT().Remove(gomock.Any(), KeyLockoutEnd).Return(boom)
	assert.ErrorIs(t, lockouts.Clear(ctx), ErrPersistence)
}

func TestLockoutStateStore_ExpiredRemovalFailureStillUnlocks(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockSecureStorage(ctrl)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	storage.EXPECT().Get(gomock.Any(), KeyLockoutEnd).Return([]byte("2025-12-31T23:59:00Z"), nil)
	storage.EXPECT().Remove(gomock.Any(), KeyLockoutEnd).Return(errors.New("read-only"))

	_, locked, err := NewLockoutStateStore(storage, logger.Nop()).IsLocked(ctx, now)

	require.NoError(t, err)
	assert.False(t, locked)
}
