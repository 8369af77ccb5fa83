package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/store"
)

type lockoutStateStore struct {
	storage store.SecureStorage

	// mu serializes window reads and writes so a restart-recovery check
	// cannot interleave with a live attempt.
	mu sync.Mutex

	logger *logger.Logger
}

// NewLockoutStateStore returns a [LockoutStateStore] persisting the window
// end under [KeyLockoutEnd] as an RFC 3339 UTC timestamp.
func NewLockoutStateStore(storage store.SecureStorage, logger *logger.Logger) LockoutStateStore {
	return &lockoutStateStore{storage: storage, logger: logger}
}

func (s *lockoutStateStore) IsLocked(ctx context.Context, now time.Time) (time.Duration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Get(ctx, KeyLockoutEnd)
	if errors.Is(err, store.ErrItemNotFound) {
		return 0, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "lockoutStateStore.IsLocked").Msg("error reading lockout window")
		return 0, false, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	end, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		s.logger.Err(err).Str("func", "lockoutStateStore.IsLocked").Msg("stored lockout window is corrupted, dropping it")
		s.remove(ctx)
		return 0, false, nil
	}

	if end.After(now) {
		return end.Sub(now), true, nil
	}

	s.remove(ctx)
	return 0, false, nil
}

func (s *lockoutStateStore) Apply(ctx context.Context, d time.Duration, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := now.Add(d).UTC().Format(time.RFC3339Nano)
	if err := s.storage.Set(ctx, KeyLockoutEnd, []byte(end)); err != nil {
		s.logger.Err(err).Str("func", "lockoutStateStore.Apply").Msg("error persisting lockout window")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.logger.Warn().Str("func", "lockoutStateStore.Apply").Dur("duration", d).Str("until", end).Msg("lockout applied")
	return nil
}

func (s *lockoutStateStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(ctx, KeyLockoutEnd); err != nil {
		s.logger.Err(err).Str("func", "lockoutStateStore.Clear").Msg("error clearing lockout window")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// remove drops an expired or unreadable window. A failure only means the
// stale value is read and dropped again next time.
func (s *lockoutStateStore) remove(ctx context.Context) {
	if err := s.storage.Remove(ctx, KeyLockoutEnd); err != nil {
		s.logger.Err(err).Str("func", "lockoutStateStore.remove").Msg("error removing expired lockout window")
	}
}
