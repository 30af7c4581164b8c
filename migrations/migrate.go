// Package migrations embeds the schema migrations and applies them with
// goose at startup. Each supported driver has its own SQL directory because
// the two engines spell identity columns and timestamp types differently.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the schema of db up to date. The driver name ("pgx" or
// "sqlite3") selects both the goose dialect and the migration directory.
func Migrate(db *sql.DB, driver string) error {
	dir := "postgres"
	if driver == "sqlite3" {
		dir = "sqlite"
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error resolving embedded dir: %w", err)
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
