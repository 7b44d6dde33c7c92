// Package migrations holds the embedded SQL schema migrations, one directory
// per supported database engine, applied with goose at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given engine
// ("postgres" or "sqlite").
func Migrate(db *sql.DB, engine string) error {
	goose.SetBaseFS(embedMigrations)

	var dialect string
	switch engine {
	case "postgres":
		dialect = "pgx"
	case "sqlite":
		dialect = "sqlite3"
	default:
		return fmt.Errorf("migration error: unsupported engine %q", engine)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, engine); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
