// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jeranaias/finassist-tui/internal/model"
	"github.com/jeranaias/finassist-tui/internal/util"
)

// ErrTranscriptNotFound is returned when a transcript ID does not exist.
var ErrTranscriptNotFound = errors.New("transcript not found")

// =============================================================================
// STORED TRANSCRIPT
// =============================================================================

// StoredTranscript is a persisted chat session.
type StoredTranscript struct {
	ID        string          `json:"id"`
	Summary   string          `json:"summary"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Messages  []model.Message `json:"messages"`
}

// TranscriptMeta contains metadata for listing transcripts.
type TranscriptMeta struct {
	ID           string    `json:"id"`
	Summary      string    `json:"summary"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
}

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

// TranscriptStore persists chat transcripts as JSON files.
type TranscriptStore struct {
	// BaseDir is the directory for stored transcripts
	// Default: ~/.finassist/transcripts/
	BaseDir string

	// MaxTranscripts limits stored transcripts (0 = unlimited)
	MaxTranscripts int
}

// NewTranscriptStore creates a transcript store rooted at baseDir.
func NewTranscriptStore(baseDir string, maxTranscripts int) (*TranscriptStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &TranscriptStore{
		BaseDir:        baseDir,
		MaxTranscripts: maxTranscripts,
	}, nil
}

// =============================================================================
// SAVE / LOAD
// =============================================================================

// Save persists a conversation and returns its ID.
func (s *TranscriptStore) Save(conv *model.Conversation) (string, error) {
	stored := StoredTranscript{
		ID:        conv.ID,
		Summary:   summarize(conv),
		CreatedAt: conv.CreatedAt,
		UpdatedAt: time.Now(),
		Messages:  conv.Messages,
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return "", err
	}

	if err := util.AtomicWriteFile(s.filePath(stored.ID), data, 0644); err != nil {
		return "", err
	}

	if s.MaxTranscripts > 0 {
		s.enforceLimit()
	}
	return stored.ID, nil
}

// Load retrieves a transcript by ID.
func (s *TranscriptStore) Load(id string) (*StoredTranscript, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTranscriptNotFound
		}
		return nil, err
	}

	var stored StoredTranscript
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// List returns all saved transcripts, most recent first.
func (s *TranscriptStore) List() ([]TranscriptMeta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TranscriptMeta{}, nil
		}
		return nil, err
	}

	var metas []TranscriptMeta
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		stored, err := s.Load(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			// Skip corrupt files rather than failing the whole listing.
			continue
		}

		metas = append(metas, TranscriptMeta{
			ID:           stored.ID,
			Summary:      stored.Summary,
			UpdatedAt:    stored.UpdatedAt,
			MessageCount: len(stored.Messages),
		})
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})
	return metas, nil
}

// Delete removes a transcript by ID.
func (s *TranscriptStore) Delete(id string) error {
	err := os.Remove(s.filePath(id))
	if os.IsNotExist(err) {
		return ErrTranscriptNotFound
	}
	return err
}

// =============================================================================
// HELPERS
// =============================================================================

func (s *TranscriptStore) filePath(id string) string {
	return filepath.Join(s.BaseDir, id+".json")
}

// summarize derives a listing summary from the first user message.
func summarize(conv *model.Conversation) string {
	for _, msg := range conv.Messages {
		if msg.Role == model.RoleUser && msg.Content != "" {
			content := strings.ReplaceAll(msg.Content, "\n", " ")
			return util.TruncateRunes(content, 50)
		}
	}
	return "New conversation"
}

// enforceLimit removes the oldest transcripts if over limit.
func (s *TranscriptStore) enforceLimit() {
	metas, err := s.List()
	if err != nil || len(metas) <= s.MaxTranscripts {
		return
	}

	// List is most-recent-first; delete from the tail.
	for _, meta := range metas[s.MaxTranscripts:] {
		s.Delete(meta.ID)
	}
}
