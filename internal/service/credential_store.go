package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-lock/internal/crypto"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/internal/store"
	"github.com/MKhiriev/go-wallet-lock/models"
)

type credentialStore struct {
	storage store.SecureStorage
	hasher  crypto.PasscodeHasher

	logger *logger.Logger
}

// NewCredentialStore returns a [CredentialStore] keeping the credential in
// storage under [KeyCredential].
func NewCredentialStore(storage store.SecureStorage, hasher crypto.PasscodeHasher, logger *logger.Logger) CredentialStore {
	return &credentialStore{storage: storage, hasher: hasher, logger: logger}
}

func (c *credentialStore) Set(ctx context.Context, passcode string) error {
	if !models.IsValidPasscode(passcode) {
		return ErrInvalidCredentialFormat
	}

	salt, err := c.hasher.GenerateSalt()
	if err != nil {
		c.logger.Err(err).Str("func", "credentialStore.Set").Msg("error generating salt")
		return fmt.Errorf("%w: generate salt: %w", ErrPersistence, err)
	}

	blob, err := json.Marshal(models.PasscodeCredential{
		SecretHash: c.hasher.Hash(passcode, salt),
		Salt:       salt,
		Length:     len(passcode),
		Algorithm:  c.hasher.Algorithm(),
	})
	if err != nil {
		return fmt.Errorf("%w: encode credential: %w", ErrPersistence, err)
	}

	batch := store.NewBatch().
		Put(KeyCredential, blob).
		Delete(KeyLockoutEnd).
		Delete(KeyFailureCount)
	if err = c.storage.Apply(ctx, batch); err != nil {
		c.logger.Err(err).Str("func", "credentialStore.Set").Msg("error committing credential")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	c.logger.Info().Str("func", "credentialStore.Set").Int("length", len(passcode)).Msg("passcode set")
	return nil
}

func (c *credentialStore) Verify(ctx context.Context, passcode string) (bool, error) {
	cred, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	// A candidate of the wrong length still goes through the full derivation.
	return c.hasher.Compare(passcode, cred.Salt, cred.SecretHash), nil
}

func (c *credentialStore) Exists(ctx context.Context) (bool, error) {
	_, err := c.load(ctx)
	if errors.Is(err, ErrNoCredential) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *credentialStore) Length(ctx context.Context) (int, error) {
	cred, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return cred.Length, nil
}

func (c *credentialStore) load(ctx context.Context) (models.PasscodeCredential, error) {
	blob, err := c.storage.Get(ctx, KeyCredential)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.PasscodeCredential{}, ErrNoCredential
	}
	if err != nil {
		c.logger.Err(err).Str("func", "credentialStore.load").Msg("error reading credential")
		return models.PasscodeCredential{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	var cred models.PasscodeCredential
	if err = json.Unmarshal(blob, &cred); err != nil {
		c.logger.Err(err).Str("func", "credentialStore.load").Msg("stored credential is corrupted")
		return models.PasscodeCredential{}, fmt.Errorf("%w: decode credential: %w", ErrPersistence, err)
	}
	if cred.Length < models.MinPasscodeLength || cred.Length > models.MaxPasscodeLength || len(cred.SecretHash) == 0 {
		c.logger.Error().Str("func", "credentialStore.load").Msg("stored credential is malformed")
		return models.PasscodeCredential{}, fmt.Errorf("%w: malformed credential", ErrPersistence)
	}

	return cred, nil
}
