package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/folio-arcade/progress"
)

// Dialect selects placeholder syntax
type Dialect uint8

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// SQL stores the record as one row per key in a progress table
type SQL struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQLite opens or creates the database file at path, creating parent directories
func OpenSQLite(ctx context.Context, path string) (*SQL, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	// Enable WAL mode so a crash mid-write cannot corrupt the last good record
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &SQL{db: db, dialect: DialectSQLite}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenPostgres connects with a lib/pq connection string
func OpenPostgres(ctx context.Context, dsn string) (*SQL, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	s := &SQL{db: db, dialect: DialectPostgres}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the schema if missing
func (s *SQL) Migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			id TEXT PRIMARY KEY,
			xp INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			high_score INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (s *SQL) Load(ctx context.Context, key string) (progress.Record, bool, error) {
	var rec progress.Record
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT xp, level, high_score FROM progress WHERE id = ?`), key)
	err := row.Scan(&rec.Experience, &rec.Level, &rec.HighScore)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.Record{}, false, nil
	}
	if err != nil {
		return progress.Record{}, false, fmt.Errorf("failed to load progress: %w", err)
	}
	return rec, true, nil
}

func (s *SQL) Save(ctx context.Context, key string, rec progress.Record) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO progress (id, xp, level, high_score, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			xp = excluded.xp,
			level = excluded.level,
			high_score = excluded.high_score,
			updated_at = CURRENT_TIMESTAMP`),
		key, rec.Experience, rec.Level, rec.HighScore)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *SQL) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders to $n for postgres
func (s *SQL) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
