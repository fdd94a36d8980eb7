package store

import (
	"fmt"
	"time"
)

// Dialect abstracts the SQL differences between SQLite and PostgreSQL.
type Dialect interface {
	// DriverName returns the database/sql driver name.
	DriverName() string

	// DataSourceName builds the connection string from cfg.
	DataSourceName(cfg Config) string

	// Placeholder returns the parameter placeholder for the given position (1-indexed).
	Placeholder(position int) string

	// InitStatements run once after the connection opens.
	InitStatements() []string

	// Configure applies pool settings suited to the backend.
	Configure(db pooler, cfg Config)
}

// pooler is the subset of *sql.DB a Dialect tunes.
type pooler interface {
	SetMaxOpenConns(n int)
	SetMaxIdleConns(n int)
	SetConnMaxLifetime(d time.Duration)
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect returns the Dialect for t, or an error for unknown drivers.
func NewDialect(t DialectType) (Dialect, error) {
	switch t {
	case DialectSQLite, "":
		return &SQLiteDialect{}, nil
	case DialectPostgres:
		return &PostgresDialect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, string(t))
	}
}
