package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqliteSecureStorage struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteSecureStorage returns a [SecureStorage] persisting items in the
// secure_items table of db.
func NewSQLiteSecureStorage(db *DB, logger *logger.Logger) SecureStorage {
	return &sqliteSecureStorage{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sqliteSecureStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetItem(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSecureStorage.Get").
			Str("key", key).
			Msg("failed to read secure item")
		return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteSecureStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.put(ctx, s.DB, key, value); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSecureStorage.Set").
			Str("key", key).
			Msg("failed to write secure item")
		return err
	}

	return nil
}

func (s *sqliteSecureStorage) Remove(ctx context.Context, key string) error {
	if err := s.remove(ctx, s.DB, key); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteSecureStorage.Remove").
			Str("key", key).
			Msg("failed to remove secure item")
		return err
	}

	return nil
}

func (s *sqliteSecureStorage) Apply(ctx context.Context, batch *Batch) error {
	if batch.Len() == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSecureStorage.Apply").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}

	for _, op := range batch.Ops() {
		if op.Remove {
			err = s.remove(ctx, tx, op.Key)
		} else {
			err = s.put(ctx, tx, op.Key, op.Value)
		}
		if err != nil {
			s.logger.Err(err).
				Str("func", "sqliteSecureStorage.Apply").
				Str("key", op.Key).
				Bool("remove", op.Remove).
				Msg("batch operation failed, rolling back")
			_ = tx.Rollback()
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", "sqliteSecureStorage.Apply").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqliteSecureStorage) put(ctx context.Context, e execer, key string, value []byte) error {
	query, args, err := buildUpsertItem(key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = e.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w (key=%s): %v", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqliteSecureStorage) remove(ctx context.Context, e execer, key string) error {
	query, args, err := buildRemoveItem(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = e.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w (key=%s): %v", ErrExecutingStatement, key, err)
	}

	return nil
}
