package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteStore implements EntityStore on a single SQLite table. A one-row
// UPSERT gives the same atomic-replace guarantee as the file store's rename.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS entities (
		namespace  TEXT NOT NULL,
		entity_key TEXT NOT NULL,
		value      TEXT NOT NULL,
		PRIMARY KEY (namespace, entity_key)
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create entities table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Exists reports whether a document has been committed for the key.
func (s *SQLiteStore) Exists(ctx context.Context, ns Namespace, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM entities WHERE namespace = ? AND entity_key = ?`,
		string(ns), key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query %s/%s: %w", ns, key, err)
	}
	return true, nil
}

// Get returns the committed document, or nil if none exists.
func (s *SQLiteStore) Get(ctx context.Context, ns Namespace, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM entities WHERE namespace = ? AND entity_key = ?`,
		string(ns), key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", ns, key, err)
	}
	return json.RawMessage(value), nil
}

// Put upserts the document for the key.
func (s *SQLiteStore) Put(ctx context.Context, ns Namespace, key string, value json.RawMessage) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entities (namespace, entity_key, value) VALUES (?, ?, ?)
		ON CONFLICT(namespace, entity_key) DO UPDATE SET value = excluded.value`,
		string(ns), key, string(value))
	if err != nil {
		return nil, fmt.Errorf("put %s/%s: %w", ns, key, err)
	}
	return value, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ EntityStore = (*SQLiteStore)(nil)
