package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-lock/internal/config"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// SecureStorage holds the credential and the lockout state.
	SecureStorage SecureStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to the file at cfg.DB.DSN, creating the
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [SecureStorage] over the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SecureStorage: NewSQLiteSecureStorage(db, logger),
		db:            db,
	}, nil
}

// NewMemoryClientStorages returns storages backed by process memory.
func NewMemoryClientStorages() *ClientStorages {
	return &ClientStorages{SecureStorage: NewMemorySecureStorage()}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
