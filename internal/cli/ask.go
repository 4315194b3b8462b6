// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command handler for the finassist CLI.
//
// Handles the "finassist ask" command: run a single question through the
// assistant, print the answer, and exit. Suitable for scripting.
//
// Command: ask
// Short:   Ask a single question and exit
//
// Examples:
//   finassist ask "What's the price of AAPL?"
//   finassist ask "How much will I pay for a $250,000 loan at 4.5% for 30 years?"
//   finassist --no-llm ask "should I buy index funds?"

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/finassist-tui/internal/config"
)

// HandleAskCommand handles the "ask" command.
func HandleAskCommand(args Args) error {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		fmt.Fprintf(os.Stderr, "%s no question provided\n", ErrorStyle.Render("[Error]"))
		fmt.Fprintln(os.Stderr, "Usage: finassist ask \"your question\"")
		os.Exit(1)
	}

	cfg := config.Global()
	asst, closer := buildAssistant(cfg, args)
	defer closer()

	answer := asst.Ask(context.Background(), query)
	displayAnswer(answer, cfg)
	return nil
}
