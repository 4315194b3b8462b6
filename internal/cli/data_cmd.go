// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// data_cmd.go - Stored financial data command handler for the finassist CLI.
//
// Handles the "finassist data" command and its subcommands for inspecting
// and editing the persistent fact store outside of a chat session.
//
// Command: data (alias: facts)
// Short:   Manage stored financial data
//
// Examples:
//   finassist data                     List stored facts
//   finassist data set monthly_income "$5000"
//   finassist data clear --confirm

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/finassist-tui/internal/config"
	"github.com/jeranaias/finassist-tui/internal/facts"
	"github.com/jeranaias/finassist-tui/internal/storage"
)

// HandleDataCommand handles the "data" command.
func HandleDataCommand(args Args) error {
	parser := NewArgParser(args.Raw)

	store, closer, err := openFactStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s opening facts database: %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}
	defer closer()

	switch parser.Subcommand() {
	case "", "list", "show":
		return handleDataList(store)

	case "set":
		return handleDataSet(store, parser)

	case "clear":
		return handleDataClear(store, parser)

	default:
		fmt.Fprintf(os.Stderr, "%s unknown data subcommand: %s\n",
			ErrorStyle.Render("[Error]"), parser.Subcommand())
		fmt.Fprintln(os.Stderr, "Available: list, set, clear")
		os.Exit(1)
		return nil
	}
}

// openFactStore opens the persistent fact store used by the data command.
func openFactStore() (facts.Store, func(), error) {
	cfg := config.Global()

	path, err := cfg.FactsDBPath()
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.OpenFactDB(path)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}

// handleDataList lists stored facts.
func handleDataList(store facts.Store) error {
	if store.Len() == 0 {
		fmt.Println(infoStyle.Render("No financial data has been set yet."))
		fmt.Printf("%s %s\n",
			infoStyle.Render("Store data with"),
			commandStyle.Render(`finassist data set monthly_income "$5000"`))
		return nil
	}

	fmt.Println(TitleStyle.Render("Your Financial Data"))
	fmt.Print(facts.Render(store))
	return nil
}

// handleDataSet stores a fact from positional KEY VALUE arguments.
func handleDataSet(store facts.Store, parser *ArgParser) error {
	key := parser.Positional(1)
	value := parser.Positional(2)
	if key == "" || value == "" {
		fmt.Fprintf(os.Stderr, "%s usage: finassist data set KEY VALUE\n", ErrorStyle.Render("[Error]"))
		os.Exit(1)
	}

	if err := store.Set(key, value); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}

	fmt.Printf("%s Saved: %s = %s\n", SuccessStyle.Render("[OK]"), key, value)
	return nil
}

// handleDataClear deletes all stored facts. Requires --confirm.
func handleDataClear(store facts.Store, parser *ArgParser) error {
	if !parser.BoolFlag("confirm") {
		fmt.Printf("%s this deletes all %d stored facts\n",
			WarningStyle.Render("[Warning]"), store.Len())
		fmt.Printf("Run %s to proceed\n", commandStyle.Render("finassist data clear --confirm"))
		return nil
	}

	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}

	fmt.Printf("%s All financial data cleared\n", SuccessStyle.Render("[OK]"))
	return nil
}
