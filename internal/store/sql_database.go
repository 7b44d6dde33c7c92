package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-time-sheet/internal/config"
	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/migrations"
)

// DB wraps the shared *sql.DB handle together with the engine-specific pieces
// repositories need: a squirrel statement builder carrying the right
// placeholder format and an error classificator for constraint violations.
type DB struct {
	*sql.DB

	engine             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for the configured engine.
// Supported engines are "postgres" and "sqlite"; the config layer already
// rejects anything else, so an unknown value here is a programming error.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Engine {
	case "postgres":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database engine %q", cfg.Engine)
	}
}

// Builder returns the squirrel statement builder configured with the
// placeholder format of the underlying engine.
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies all embedded schema migrations for the connected engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}
