package service

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/models"
)

type passcodeSetup struct {
	credentials CredentialStore

	mu    sync.Mutex
	first []byte

	logger *logger.Logger
}

// NewPasscodeSetup returns the two-phase setup flow committing through
// credentials.
func NewPasscodeSetup(credentials CredentialStore, logger *logger.Logger) PasscodeSetup {
	return &passcodeSetup{credentials: credentials, logger: logger}
}

func (s *passcodeSetup) Enter(candidate string) error {
	if !models.IsValidPasscode(candidate) {
		return ErrInvalidCredentialFormat
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.first = []byte(candidate)
	return nil
}

func (s *passcodeSetup) Confirm(ctx context.Context, candidate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.first == nil {
		return ErrSetupNotStarted
	}

	first := s.first
	if subtle.ConstantTimeCompare(first, []byte(candidate)) != 1 {
		s.clearLocked()
		s.logger.Info().Str("func", "passcodeSetup.Confirm").Msg("passcode confirmation mismatch")
		return ErrCredentialMismatch
	}

	if err := s.credentials.Set(ctx, candidate); err != nil {
		// The first entry is kept so the confirmation can be retried.
		return err
	}

	s.clearLocked()
	return nil
}

func (s *passcodeSetup) Confirming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.first != nil
}

func (s *passcodeSetup) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *passcodeSetup) clearLocked() {
	for i := range s.first {
		s.first[i] = 0
	}
	s.first = nil
}
