// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution.
//
// This test file covers argument parsing: the shared ArgParser and the
// top-level command dispatch.
package cli

import (
	"fmt"
	"strings"
	"testing"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"set"},
			wantSub: "set",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"list", "--limit", "5"},
			wantSub: "list",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("limit") != "5" {
					t.Errorf("Flag(limit) = %q, want %q", p.Flag("limit"), "5")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"quote", "--ticker=AAPL"},
			wantSub: "quote",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("ticker") != "AAPL" {
					t.Errorf("Flag(ticker) = %q, want %q", p.Flag("ticker"), "AAPL")
				}
			},
		},
		{
			name:    "boolean flag",
			args:    []string{"clear", "--confirm"},
			wantSub: "clear",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("confirm") {
					t.Error("BoolFlag(confirm) should be true")
				}
			},
		},
		{
			name:    "boolean flag with explicit value",
			args:    []string{"show", "--json=false"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be false")
				}
			},
		},
		{
			name:    "multiple positional args",
			args:    []string{"set", "monthly_income", "$5000"},
			wantSub: "set",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 3 {
					t.Errorf("PositionalCount() = %d, want 3", p.PositionalCount())
				}
				if p.Positional(2) != "$5000" {
					t.Errorf("Positional(2) = %q, want %q", p.Positional(2), "$5000")
				}
			},
		},
		{
			name:    "empty args",
			args:    []string{},
			wantSub: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args)
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_IntFlag(t *testing.T) {
	p := NewArgParser([]string{"--width", "120", "--bad", "abc"})

	if got := p.IntFlag("width", 80); got != 120 {
		t.Errorf("IntFlag(width) = %d, want 120", got)
	}
	if got := p.IntFlag("bad", 80); got != 80 {
		t.Errorf("IntFlag(bad) = %d, want default 80", got)
	}
	if got := p.IntFlag("missing", 42); got != 42 {
		t.Errorf("IntFlag(missing) = %d, want default 42", got)
	}
}

func TestArgParser_Positional_OutOfRange(t *testing.T) {
	p := NewArgParser([]string{"set"})
	if got := p.Positional(5); got != "" {
		t.Errorf("Positional(5) = %q, want empty", got)
	}
}

// =============================================================================
// COMMAND DISPATCH TESTS (cli.go)
// =============================================================================

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantCmd Command
	}{
		{"no args defaults to chat", []string{}, CmdChat},
		{"explicit chat", []string{"chat"}, CmdChat},
		{"ask", []string{"ask", "what's", "the", "price", "of", "AAPL?"}, CmdAsk},
		{"quote", []string{"quote", "AAPL"}, CmdQuote},
		{"stock alias", []string{"stock", "MSFT"}, CmdQuote},
		{"price alias", []string{"price", "GOOG"}, CmdQuote},
		{"data", []string{"data"}, CmdData},
		{"facts alias", []string{"facts"}, CmdData},
		{"config", []string{"config", "show"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"-h"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := parseArgs(tt.args)
			if cmd != tt.wantCmd {
				t.Errorf("parseArgs(%v) = %v, want %v", tt.args, cmd, tt.wantCmd)
			}
		})
	}
}

func TestParseArgs_AskJoinsQuery(t *testing.T) {
	cmd, args := parseArgs([]string{"ask", "how", "much", "will", "I", "pay?"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "how much will I pay?" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgs_UnknownCommandBecomesQuestion(t *testing.T) {
	cmd, args := parseArgs([]string{"what's", "the", "price", "of", "AAPL?"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "what's the price of AAPL?" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	cmd, args := parseArgs([]string{"--quiet", "--no-llm", "-m", "mistral", "ask", "hello"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if !args.Quiet {
		t.Error("Quiet should be true")
	}
	if !args.NoLLM {
		t.Error("NoLLM should be true")
	}
	if args.Model != "mistral" {
		t.Errorf("Model = %q, want %q", args.Model, "mistral")
	}
	if args.Query != "hello" {
		t.Errorf("Query = %q, want %q", args.Query, "hello")
	}
}

// The usage examples contain literal percent signs ("4.5%"); they must be
// escaped so Printf does not read them as format verbs.
func TestUsageTextRendersCleanly(t *testing.T) {
	rendered := fmt.Sprintf(usageText, Version)

	if strings.Contains(rendered, "%!") {
		t.Errorf("usage text has unconsumed format verbs:\n%s", rendered)
	}
	if !strings.Contains(rendered, "4.5% for 30 years") {
		t.Error("usage text should print the literal percent in examples")
	}
	if !strings.Contains(rendered, "Version: "+Version) {
		t.Error("usage text should end with the version line")
	}
}

func TestParseArgs_SubcommandCaptured(t *testing.T) {
	_, args := parseArgs([]string{"data", "set", "income", "$5000"})
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q, want %q", args.Subcommand, "set")
	}
	if len(args.Raw) != 3 {
		t.Errorf("Raw = %v, want 3 entries", args.Raw)
	}
}
