package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-spellbook/internal/config"
	"github.com/MKhiriev/go-spellbook/internal/logger"
	"github.com/MKhiriev/go-spellbook/migrations"
)

// Dialect names the SQL backend behind a [DB]. The values double as goose
// dialect names.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "postgres"
)

// DB wraps *sql.DB with the dialect-specific pieces every repository needs:
// a squirrel statement builder with the right placeholder format and an
// error classifier for driver errors.
type DB struct {
	*sql.DB
	dialect         Dialect
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

// NewConnect opens the backend selected by the DSN: postgres:// and
// postgresql:// URIs open PostgreSQL, anything else is an SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Dialect returns the backend dialect.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func isInMemoryDSN(dsn string) bool {
	return dsn == "memory" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
