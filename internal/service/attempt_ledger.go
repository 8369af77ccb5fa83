package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/store"
)

type attemptLedger struct {
	storage store.SecureStorage

	mu sync.Mutex

	logger *logger.Logger
}

// NewAttemptLedger returns an [AttemptLedger] persisting the count under
// [KeyFailureCount]. An absent key means zero.
func NewAttemptLedger(storage store.SecureStorage, logger *logger.Logger) AttemptLedger {
	return &attemptLedger{storage: storage, logger: logger}
}

func (l *attemptLedger) RecordFailure(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	count, err := l.read(ctx)
	if err != nil {
		return 0, err
	}
	count++

	if err = l.storage.Set(ctx, KeyFailureCount, []byte(strconv.Itoa(count))); err != nil {
		l.logger.Err(err).Str("func", "attemptLedger.RecordFailure").Msg("error persisting failure count")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return count, nil
}

func (l *attemptLedger) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.storage.Remove(ctx, KeyFailureCount); err != nil {
		l.logger.Err(err).Str("func", "attemptLedger.Reset").Msg("error resetting failure count")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (l *attemptLedger) Count(ctx context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.read(ctx)
}

func (l *attemptLedger) read(ctx context.Context) (int, error) {
	raw, err := l.storage.Get(ctx, KeyFailureCount)
	if errors.Is(err, store.ErrItemNotFound) {
		return 0, nil
	}
	if err != nil {
		l.logger.Err(err).Str("func", "attemptLedger.read").Msg("error reading failure count")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	count, err := strconv.Atoi(string(raw))
	if err != nil || count < 0 {
		l.logger.Error().Str("func", "attemptLedger.read").Str("value", string(raw)).Msg("stored failure count is corrupted")
		return 0, fmt.Errorf("%w: corrupted failure count %q", ErrPersistence, raw)
	}
	return count, nil
}
