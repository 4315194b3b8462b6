// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// setup.go - Assistant wiring shared by the chat and ask commands.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/finassist-tui/internal/assistant"
	"github.com/jeranaias/finassist-tui/internal/config"
	"github.com/jeranaias/finassist-tui/internal/facts"
	"github.com/jeranaias/finassist-tui/internal/market"
	"github.com/jeranaias/finassist-tui/internal/ollama"
	"github.com/jeranaias/finassist-tui/internal/storage"
)

// =============================================================================
// GENERATIVE FALLBACK ADAPTER
// =============================================================================

// ollamaGenerator adapts the Ollama client to the assistant's Generator
// contract with a fixed model.
type ollamaGenerator struct {
	client *ollama.Client
	model  string
}

func (g *ollamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.client.Generate(ctx, g.model, prompt)
}

// =============================================================================
// ASSISTANT WIRING
// =============================================================================

// buildAssistant assembles an assistant from configuration: the persistent
// fact store, the quote client, and (when enabled) the generative fallback.
// The returned closer releases the fact database.
func buildAssistant(cfg *config.Config, args Args) (*assistant.Assistant, func()) {
	// Facts live in SQLite so "set monthly_income: $5000" survives across
	// sessions. A failed open degrades to session-only memory.
	var store facts.Store
	closer := func() {}

	dbPath, err := cfg.FactsDBPath()
	if err == nil {
		var db *storage.FactDB
		if db, err = storage.OpenFactDB(dbPath); err == nil {
			store = db
			closer = func() { db.Close() }
		}
	}
	if store == nil {
		if !args.Quiet {
			fmt.Fprintf(os.Stderr, "%s facts database unavailable, data will not persist: %v\n",
				WarningStyle.Render("[Warning]"), err)
		}
		store = facts.NewMemoryStore()
	}

	quotes := market.NewClientWithConfig(&market.ClientConfig{
		BaseURL:           cfg.Market.BaseURL,
		Timeout:           cfg.MarketTimeout(),
		RequestsPerSecond: cfg.Market.RequestsPerSecond,
	})

	var generator assistant.Generator
	if cfg.Assistant.LLMFallback && !args.NoLLM {
		model := args.Model
		if model == "" {
			model = cfg.Local.OllamaModel
		}
		generator = &ollamaGenerator{
			client: ollama.NewClientWithConfig(&ollama.ClientConfig{
				BaseURL:      cfg.Local.OllamaURL,
				DefaultModel: model,
			}),
			model: model,
		}
	}

	return assistant.New(assistant.Config{
		Facts:            store,
		Market:           quotes,
		Generator:        generator,
		DefaultTermYears: cfg.Assistant.DefaultTermYears,
	}), closer
}
