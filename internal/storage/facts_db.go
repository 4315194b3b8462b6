// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides persistence for finassist: a SQLite-backed fact
// store that survives across sessions, and JSON transcript files.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrDatabaseError wraps unexpected SQLite failures.
var ErrDatabaseError = errors.New("database error")

// =============================================================================
// FACT DATABASE
// =============================================================================

// FactDB is a SQLite-backed fact store implementing facts.Store. Keys keep
// their first insertion position across re-sets, matching the in-memory
// store's ordering semantics.
type FactDB struct {
	db *sql.DB
	mu sync.Mutex
}

const factSchema = `
CREATE TABLE IF NOT EXISTS facts (
	key_lower TEXT PRIMARY KEY,
	key       TEXT NOT NULL,
	value     TEXT NOT NULL,
	pos       INTEGER NOT NULL
);
`

// OpenFactDB opens (creating if necessary) the fact database at path.
// Use ":memory:" for an ephemeral store in tests.
func OpenFactDB(path string) (*FactDB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	// A single connection avoids table-lock races between the REPL
	// goroutine and command handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(factSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	return &FactDB{db: db}, nil
}

// Close releases the underlying database handle.
func (f *FactDB) Close() error {
	return f.db.Close()
}

// Set stores a fact, replacing any existing value for the key. A replaced
// key keeps its original insertion position.
func (f *FactDB) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, err := f.db.Exec(`
		INSERT INTO facts (key_lower, key, value, pos)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(pos), 0) + 1 FROM facts))
		ON CONFLICT(key_lower) DO UPDATE SET key = excluded.key, value = excluded.value`,
		strings.ToLower(key), key, value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// Get returns the value for an exact key, case-insensitive.
func (f *FactDB) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var value string
	err := f.db.QueryRow(`SELECT value FROM facts WHERE key_lower = ?`, strings.ToLower(key)).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Match returns the first fact whose key contains substring
// (case-insensitive), in insertion order.
func (f *FactDB) Match(substring string) (string, string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var key, value string
	err := f.db.QueryRow(`
		SELECT key, value FROM facts
		WHERE instr(key_lower, ?) > 0
		ORDER BY pos LIMIT 1`,
		strings.ToLower(substring)).Scan(&key, &value)
	if err != nil {
		return "", "", false
	}
	return key, value, true
}

// Keys returns all fact keys in insertion order.
func (f *FactDB) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	rows, err := f.db.Query(`SELECT key FROM facts ORDER BY pos`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if rows.Scan(&key) == nil {
			keys = append(keys, key)
		}
	}
	return keys
}

// Clear removes all facts.
func (f *FactDB) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.db.Exec(`DELETE FROM facts`); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// Len reports the number of stored facts.
func (f *FactDB) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int
	if err := f.db.QueryRow(`SELECT COUNT(*) FROM facts`).Scan(&n); err != nil {
		return 0
	}
	return n
}
