package service

import (
	"github.com/MKhiriev/go-wallet-lock/internal/adapter"
	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/crypto"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/store"
)

type ClientServices struct {
	Credentials   CredentialStore
	Ledger        AttemptLedger
	Lockouts      LockoutStateStore
	BiometricGate BiometricGate
	Coordinator   Coordinator
	Setup         PasscodeSetup
	CountdownJob  CountdownJob
}

func NewClientServices(
	storage store.SecureStorage,
	hasher crypto.PasscodeHasher,
	platform adapter.BiometricPlatform,
	cfg config.ClientLock,
	logger *logger.Logger,
	opts ...CoordinatorOption,
) *ClientServices {
	credentials := NewCredentialStore(storage, hasher, logger)
	ledger := NewAttemptLedger(storage, logger)
	lockouts := NewLockoutStateStore(storage, logger)
	gate := NewBiometricGate(platform, logger)
	coordinator := NewCoordinator(credentials, ledger, NewLockoutPolicy(), lockouts, gate, cfg, logger, opts...)

	return &ClientServices{
		Credentials:   credentials,
		Ledger:        ledger,
		Lockouts:      lockouts,
		BiometricGate: gate,
		Coordinator:   coordinator,
		Setup:         NewPasscodeSetup(credentials, logger),
		CountdownJob:  NewCountdownJob(coordinator),
	}
}
