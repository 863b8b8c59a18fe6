package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/keshon/toolmaker/internal/clock"
	"github.com/keshon/toolmaker/internal/state"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS workshop_state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	document TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteStore keeps the state document in a one-row table.
type SQLiteStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLite(path string, clk clock.Clock) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, clock: clk}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*state.State, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM workshop_state WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, state.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return state.Decode([]byte(doc), clock.DateString(s.clock.Now()))
}

func (s *SQLiteStore) Save(ctx context.Context, st *state.State) error {
	data, err := state.Encode(st)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO workshop_state (id, document, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Close releases the underlying SQLite connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
