package store

import (
	"database/sql"

	"github.com/dkordic/noteboard/internal/logger"
)

// DB wraps *sql.DB together with the driver name it was opened with, so that
// migrations can select the matching goose dialect.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Driver returns the database/sql driver name the connection was opened with
// ("pgx" or "sqlite3").
func (db *DB) Driver() string {
	return db.driver
}
