package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStorage(t *testing.T) (*sqliteSecureStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	s := NewSQLiteSecureStorage(&DB{DB: db, logger: l}, l).(*sqliteSecureStorage)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return s, mock
}

func TestSQLiteStorage_Get_Success(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT item_value FROM secure_items").
		WithArgs("passcode.credential").
		WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow([]byte("blob")))

	got, err := s.Get(context.Background(), "passcode.credential")
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Get_NotFound(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT item_value FROM secure_items").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSQLiteStorage_Get_DBError(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT item_value FROM secure_items").
		WithArgs("k").
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}

func TestSQLiteStorage_Set_Upserts(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("INSERT INTO secure_items .* ON CONFLICT\\(item_key\\) DO UPDATE").
		WithArgs("lockout.failure_count", []byte("3"), s.now().UTC()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "lockout.failure_count", []byte("3")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Set_Error(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("INSERT INTO secure_items").
		WillReturnError(errors.New("database is locked"))

	err := s.Set(context.Background(), "k", []byte("v"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteStorage_Remove(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("DELETE FROM secure_items WHERE item_key = \\?").
		WithArgs("lockout.end_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Remove(context.Background(), "lockout.end_timestamp"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Apply_Commits(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO secure_items").
		WithArgs("passcode.credential", []byte("cred"), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM secure_items").
		WithArgs("lockout.end_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM secure_items").
		WithArgs("lockout.failure_count").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	batch := NewBatch().
		Put("passcode.credential", []byte("cred")).
		Delete("lockout.end_timestamp").
		Delete("lockout.failure_count")

	require.NoError(t, s.Apply(context.Background(), batch))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Apply_RollsBackOnFailure(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO secure_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM secure_items").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	batch := NewBatch().Put("a", []byte("1")).Delete("b")

	err := s.Apply(context.Background(), batch)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Apply_BeginError(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectBegin().WillReturnError(errors.New("busy"))

	err := s.Apply(context.Background(), NewBatch().Put("a", []byte("1")))
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSQLiteStorage_Apply_CommitError(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO secure_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := s.Apply(context.Background(), NewBatch().Put("a", []byte("1")))
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestSQLiteStorage_Apply_EmptyBatchIsNoop(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	require.NoError(t, s.Apply(context.Background(), NewBatch()))
	require.NoError(t, s.Apply(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
