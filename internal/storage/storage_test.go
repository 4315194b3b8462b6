// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/finassist-tui/internal/facts"
	"github.com/jeranaias/finassist-tui/internal/model"
)

// FactDB must satisfy the same contract as the in-memory store.
var _ facts.Store = (*FactDB)(nil)

// =============================================================================
// FACT DATABASE
// =============================================================================

func openTestDB(t *testing.T) *FactDB {
	t.Helper()
	db, err := OpenFactDB(filepath.Join(t.TempDir(), "facts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFactDBSetGet(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Set("monthly_income", "$5000"))

	value, ok := db.Get("Monthly_Income")
	assert.True(t, ok)
	assert.Equal(t, "$5000", value)

	_, ok = db.Get("unknown")
	assert.False(t, ok)
}

func TestFactDBLastWriteWinsKeepsPosition(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Set("income", "$4000"))
	require.NoError(t, db.Set("debt", "$300"))
	require.NoError(t, db.Set("Income", "$5000"))

	value, _ := db.Get("income")
	assert.Equal(t, "$5000", value)
	assert.Equal(t, 2, db.Len())

	// Re-set key keeps its original slot
	assert.Equal(t, []string{"Income", "debt"}, db.Keys())
}

func TestFactDBMatch(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Set("Monthly Salary", "$4,200"))
	require.NoError(t, db.Set("stock_AAPL", "$198.11"))

	key, value, ok := db.Match("salary")
	assert.True(t, ok)
	assert.Equal(t, "Monthly Salary", key)
	assert.Equal(t, "$4,200", value)

	_, _, ok = db.Match("mortgage")
	assert.False(t, ok)
}

func TestFactDBClear(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Set("a", "1"))
	require.NoError(t, db.Set("b", "2"))
	require.NoError(t, db.Clear())

	assert.Equal(t, 0, db.Len())
	assert.Empty(t, db.Keys())
}

func TestFactDBPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.db")

	db, err := OpenFactDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Set("savings", "$12,000"))
	require.NoError(t, db.Close())

	db, err = OpenFactDB(path)
	require.NoError(t, err)
	defer db.Close()

	value, ok := db.Get("savings")
	assert.True(t, ok)
	assert.Equal(t, "$12,000", value)
}

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

func TestTranscriptSaveLoad(t *testing.T) {
	store, err := NewTranscriptStore(t.TempDir(), 0)
	require.NoError(t, err)

	conv := model.NewConversation()
	conv.Append(model.RoleUser, "What's the price of AAPL?")
	conv.Append(model.RoleAssistant, "The latest price of Apple Inc. (AAPL) is $198.11")

	id, err := store.Save(conv)
	require.NoError(t, err)

	loaded, err := store.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "What's the price of AAPL?", loaded.Summary)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, model.RoleAssistant, loaded.Messages[1].Role)
}

func TestTranscriptLoadMissing(t *testing.T) {
	store, err := NewTranscriptStore(t.TempDir(), 0)
	require.NoError(t, err)

	_, err = store.Load("nope")
	assert.ErrorIs(t, err, ErrTranscriptNotFound)
}

func TestTranscriptListAndLimit(t *testing.T) {
	store, err := NewTranscriptStore(t.TempDir(), 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		conv := model.NewConversation()
		conv.Append(model.RoleUser, "question")
		_, err := store.Save(conv)
		require.NoError(t, err)
	}

	metas, err := store.List()
	require.NoError(t, err)
	assert.Len(t, metas, 2, "oldest transcript should have been pruned")
}
