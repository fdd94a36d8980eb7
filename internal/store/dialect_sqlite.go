package store

import (
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteDialect implements Dialect for the modernc.org/sqlite driver.
type SQLiteDialect struct{}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite"
}

func (d *SQLiteDialect) DataSourceName(cfg Config) string {
	return cfg.SQLitePath
}

// Placeholder returns "?" for all positions.
func (d *SQLiteDialect) Placeholder(position int) string {
	return "?"
}

func (d *SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

// Configure pins the pool to one connection so the PRAGMAs hold for every query.
func (d *SQLiteDialect) Configure(db pooler, cfg Config) {
	db.SetMaxOpenConns(1)
}

// ensureDir creates the parent directory of the database file.
func (d *SQLiteDialect) ensureDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
