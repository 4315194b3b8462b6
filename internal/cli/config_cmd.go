// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler for the finassist CLI.
//
// Command: config
// Short:   Show or initialize configuration
//
// Examples:
//   finassist config show
//   finassist config init
//   finassist config path

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/finassist-tui/internal/config"
)

// HandleConfigCommand handles the "config" command.
func HandleConfigCommand(args Args) error {
	parser := NewArgParser(args.Raw)

	switch parser.Subcommand() {
	case "", "show":
		return handleConfigShow()

	case "init":
		return handleConfigInit()

	case "path":
		return handleConfigPath()

	default:
		fmt.Fprintf(os.Stderr, "%s unknown config subcommand: %s\n",
			ErrorStyle.Render("[Error]"), parser.Subcommand())
		fmt.Fprintln(os.Stderr, "Available: show, init, path")
		os.Exit(1)
		return nil
	}
}

// handleConfigShow prints the effective configuration.
func handleConfigShow() error {
	cfg := config.Global()

	path, _ := config.ConfigPath()
	exists := false
	if _, err := os.Stat(path); err == nil {
		exists = true
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	if exists {
		fmt.Printf("%s %s\n", LabelStyle.Render("File:"), ValueStyle.Render(path))
	} else {
		fmt.Printf("%s %s %s\n", LabelStyle.Render("File:"), ValueStyle.Render(path),
			infoStyle.Render("(not written, using defaults)"))
	}
	fmt.Println()

	fmt.Println(LabelStyle.Render("[market]"))
	fmt.Printf("  %s %s\n", LabelStyle.Render("base_url:"), ValueStyle.Render(cfg.Market.BaseURL))
	fmt.Printf("  %s %s\n", LabelStyle.Render("timeout_secs:"), ValueStyle.Render(fmt.Sprintf("%d", cfg.Market.TimeoutSecs)))
	fmt.Printf("  %s %s\n", LabelStyle.Render("requests_per_second:"), ValueStyle.Render(fmt.Sprintf("%g", cfg.Market.RequestsPerSecond)))
	fmt.Println()

	fmt.Println(LabelStyle.Render("[assistant]"))
	fmt.Printf("  %s %s\n", LabelStyle.Render("llm_fallback:"), ValueStyle.Render(fmt.Sprintf("%t", cfg.Assistant.LLMFallback)))
	fmt.Printf("  %s %s\n", LabelStyle.Render("default_term_years:"), ValueStyle.Render(fmt.Sprintf("%d", cfg.Assistant.DefaultTermYears)))
	fmt.Println()

	fmt.Println(LabelStyle.Render("[local]"))
	fmt.Printf("  %s %s\n", LabelStyle.Render("ollama_url:"), ValueStyle.Render(cfg.Local.OllamaURL))
	fmt.Printf("  %s %s\n", LabelStyle.Render("ollama_model:"), ValueStyle.Render(cfg.Local.OllamaModel))
	fmt.Println()

	fmt.Println(LabelStyle.Render("[storage]"))
	factsPath, err := cfg.FactsDBPath()
	if err != nil {
		factsPath = fmt.Sprintf("(unavailable: %v)", err)
	}
	fmt.Printf("  %s %s\n", LabelStyle.Render("facts_path:"), ValueStyle.Render(factsPath))
	fmt.Printf("  %s %s\n", LabelStyle.Render("max_conversations:"), ValueStyle.Render(fmt.Sprintf("%d", cfg.Storage.MaxConversations)))
	fmt.Println()

	fmt.Println(LabelStyle.Render("[ui]"))
	fmt.Printf("  %s %s\n", LabelStyle.Render("markdown:"), ValueStyle.Render(fmt.Sprintf("%t", cfg.UI.Markdown)))
	fmt.Printf("  %s %s\n", LabelStyle.Render("charts:"), ValueStyle.Render(fmt.Sprintf("%t", cfg.UI.Charts)))
	fmt.Printf("  %s %s\n", LabelStyle.Render("chart_width:"), ValueStyle.Render(fmt.Sprintf("%d", cfg.UI.ChartWidth)))

	return nil
}

// handleConfigInit writes the default config file.
func handleConfigInit() error {
	path, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("%s config file already exists: %s\n", WarningStyle.Render("[Warning]"), path)
		return nil
	}

	if err := config.Save(config.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "%s writing config: %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}

	fmt.Printf("%s Wrote default config to %s\n", SuccessStyle.Render("[OK]"), path)
	return nil
}

// handleConfigPath prints the config file location.
func handleConfigPath() error {
	path, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		os.Exit(1)
	}
	fmt.Println(path)
	return nil
}
