// Package store persists solved puzzle answers in SQLite or PostgreSQL,
// keyed by the digest of the input text.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned by Lookup when no answer is stored for a digest.
	ErrNotFound = errors.New("store: solution not found")

	// ErrUnknownDriver is returned for a Config.Driver other than sqlite or postgres.
	ErrUnknownDriver = errors.New("store: unknown driver")
)

// Record is one stored solution.
type Record struct {
	Digest   string
	Rows     int
	Columns  int
	Steps    int
	Enclosed int
	SolvedAt time.Time
}

// Store wraps the database connection.
type Store struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

const schema = `CREATE TABLE IF NOT EXISTS solutions (
	digest TEXT PRIMARY KEY,
	row_count INTEGER NOT NULL,
	column_count INTEGER NOT NULL,
	steps INTEGER NOT NULL,
	enclosed INTEGER NOT NULL,
	solved_at BIGINT NOT NULL
)`

// Open connects using cfg, runs the dialect init statements and creates the
// schema if it does not exist.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	dialect, err := NewDialect(DialectType(cfg.Driver))
	if err != nil {
		return nil, err
	}
	if sd, ok := dialect.(*SQLiteDialect); ok {
		if err := sd.ensureDir(cfg.SQLitePath); err != nil {
			return nil, fmt.Errorf("store: create database directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), dialect.DataSourceName(cfg))
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	dialect.Configure(db, cfg)

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: init %q: %w", stmt, err)
		}
	}

	s := &Store{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: run migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts rec, replacing any answer already stored under its digest.
// A zero SolvedAt is set to the current time.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if rec.Digest == "" {
		return errors.New("store: record has empty digest")
	}
	if rec.SolvedAt.IsZero() {
		rec.SolvedAt = time.Now()
	}
	query := s.qb.Build(`INSERT INTO solutions (digest, row_count, column_count, steps, enclosed, solved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (digest) DO UPDATE SET
			row_count = excluded.row_count,
			column_count = excluded.column_count,
			steps = excluded.steps,
			enclosed = excluded.enclosed,
			solved_at = excluded.solved_at`)
	_, err := s.db.ExecContext(ctx, query,
		rec.Digest, rec.Rows, rec.Columns, rec.Steps, rec.Enclosed, rec.SolvedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("store: save %s: %w", rec.Digest, err)
	}
	return nil
}

// Lookup returns the record stored under digest, or ErrNotFound.
func (s *Store) Lookup(ctx context.Context, digest string) (Record, error) {
	query := s.qb.Build(`SELECT digest, row_count, column_count, steps, enclosed, solved_at
		FROM solutions WHERE digest = ?`)

	var (
		rec    Record
		millis int64
	)
	err := s.db.QueryRowContext(ctx, query, digest).
		Scan(&rec.Digest, &rec.Rows, &rec.Columns, &rec.Steps, &rec.Enclosed, &millis)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: lookup %s: %w", digest, err)
	}
	rec.SolvedAt = time.UnixMilli(millis).UTC()
	return rec, nil
}

// Count returns the number of stored solutions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solutions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}
