// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package facts provides the session fact store: an ordered key/value map of
// user-supplied financial data ("monthly_income" -> "$5000 per month").
//
// Keys preserve their original spelling but lookups are case-insensitive,
// and Match finds keys by substring so a question about "salary" can hit a
// "Monthly Salary" fact. Last write for a key wins; no history is kept.
package facts

import (
	"errors"
	"strings"
	"sync"
)

// ErrBadSetCommand is returned when a "set" command has no colon separator.
var ErrBadSetCommand = errors.New("invalid format, use: set key: value")

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store is the fact storage contract shared by the in-memory session store
// and the SQLite-backed persistent store.
type Store interface {
	// Set stores a fact, replacing any existing value for the same key
	// (compared case-insensitively).
	Set(key, value string) error

	// Get returns the value for an exact key (case-insensitive).
	Get(key string) (string, bool)

	// Match returns the first fact whose key contains the given substring
	// (case-insensitive), in insertion order.
	Match(substring string) (key, value string, ok bool)

	// Keys returns all keys in insertion order.
	Keys() []string

	// Clear removes all facts.
	Clear() error

	// Len reports the number of stored facts.
	Len() int
}

// =============================================================================
// MEMORY STORE
// =============================================================================

// MemoryStore is the session-scoped Store. Safe for concurrent use, though
// the assistant itself runs at most one question at a time per session.
type MemoryStore struct {
	mu    sync.Mutex
	order []string
	data  map[string]string // lower-cased key -> value
	names map[string]string // lower-cased key -> original spelling
}

// NewMemoryStore creates an empty in-memory fact store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]string),
		names: make(map[string]string),
	}
}

// Set stores a fact. A re-set key keeps its original position in the
// insertion order but takes the new spelling and value.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(key)
	if _, exists := s.data[lower]; !exists {
		s.order = append(s.order, lower)
	}
	s.data[lower] = value
	s.names[lower] = key
	return nil
}

// Get returns the value for an exact key, case-insensitive.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[strings.ToLower(key)]
	return value, ok
}

// Match returns the first fact whose key contains substring.
func (s *MemoryStore) Match(substring string) (string, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(substring)
	for _, lower := range s.order {
		if strings.Contains(lower, needle) {
			return s.names[lower], s.data[lower], true
		}
	}
	return "", "", false
}

// Keys returns all fact keys in insertion order, original spelling.
func (s *MemoryStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, len(s.order))
	for i, lower := range s.order {
		keys[i] = s.names[lower]
	}
	return keys
}

// Clear removes all facts.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.data = make(map[string]string)
	s.names = make(map[string]string)
	return nil
}

// Len reports the number of stored facts.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// =============================================================================
// SET COMMAND
// =============================================================================

// ParseSetCommand parses the body of a "set key: value" command (the part
// after the "set " prefix). The split is on the FIRST colon so values may
// themselves contain colons. Key and value are trimmed of whitespace.
func ParseSetCommand(body string) (key, value string, err error) {
	idx := strings.Index(body, ":")
	if idx < 0 {
		return "", "", ErrBadSetCommand
	}

	key = strings.TrimSpace(body[:idx])
	value = strings.TrimSpace(body[idx+1:])
	if key == "" {
		return "", "", ErrBadSetCommand
	}
	return key, value, nil
}

// Render formats all facts as "key: value" lines in insertion order, the
// listing used by "show data".
func Render(s Store) string {
	var b strings.Builder
	for _, key := range s.Keys() {
		value, _ := s.Get(key)
		b.WriteString("- ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}
