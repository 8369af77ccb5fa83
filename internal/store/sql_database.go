package store

import (
	"database/sql"

	"github.com/MKhiriev/go-wallet-lock/internal/logger"
	"github.com/MKhiriev/go-wallet-lock/migrations"
)

// DB wraps the SQLite connection used by the secure store.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date with the embedded migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
