// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for finassist.

package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdChat Command = iota
	CmdAsk
	CmdQuote
	CmdData
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	NoLLM   bool   // Disable the generative fallback even if configured
	Model   string // Override the fallback model

	// Command-specific
	Query      string
	Subcommand string

	// Raw args remaining after global flag parsing
	Raw []string
}

const usageText = `finassist - financial assistant for the command line

Finassist answers financial questions in plain English:
  - Loan payments: amortized monthly payment, total paid, total interest
  - Investment growth: future value with optional monthly contributions
  - Stock quotes with a year of price history
  - 50/30/20 budget splits from your stored income
  - Remembers your financial data across sessions ("set income: $5000")

Usage:
  finassist                        Start interactive chat (default)
  finassist chat                   Interactive chat
  finassist ask "question"         Ask a single question
  finassist quote TICKER           Look up a stock quote
  finassist data [subcommand]      Stored financial data
  finassist config [subcommand]    Configuration
  finassist version                Show version
  finassist help                   Show this help

Data Commands:
  finassist data                   List stored facts
  finassist data set KEY VALUE     Store a fact
  finassist data clear --confirm   Delete all stored facts

Config Commands:
  finassist config show            Show current configuration
  finassist config init            Write the default config file
  finassist config path            Print the config file location

Interactive Commands (during chat):
  set key: value      Store a fact ("set monthly_income: $5000")
  show data           List stored facts
  /help, /h           Show available commands
  /data               List stored facts
  /clear-data         Delete all stored facts
  /history            Show this session's conversation
  /quit, /q           Exit chat (also: exit, quit, Ctrl+D)

Global Flags:
  -q, --quiet         Minimal output
  -v, --verbose       Debug output
  --no-llm            Disable the generative fallback
  --model NAME        Override the fallback model

Examples:
  finassist ask "What's the price of AAPL?"
  finassist ask "How much will I pay for a $250,000 loan at 4.5%% for 30 years?"
  finassist ask "If I invest $10,000 at 7%% return for 20 years, how much will I have?"
  finassist quote MSFT
  finassist data set monthly_income "$5000"

Environment:
  FINASSIST_MARKET_URL      Override the quote provider URL
  FINASSIST_OLLAMA_URL      Override the Ollama URL
  FINASSIST_MODEL           Override the fallback model
  FINASSIST_LLM_FALLBACK    Enable/disable the generative fallback (true/false)
  FINASSIST_FACTS_DB        Override the facts database path

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("finassist version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	// No arguments defaults to interactive chat.
	if len(remaining) == 0 {
		return CmdChat, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining
	if len(remaining) > 0 {
		parsedArgs.Subcommand = remaining[0]
	}

	switch cmd {
	case "chat":
		return CmdChat, parsedArgs

	case "ask":
		parsedArgs.Query = strings.Join(remaining, " ")
		return CmdAsk, parsedArgs

	case "quote", "stock", "price":
		return CmdQuote, parsedArgs

	case "data", "facts":
		return CmdData, parsedArgs

	case "config":
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command reads naturally as a question:
		// "finassist what's the price of AAPL" just works.
		parsedArgs.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, parsedArgs
	}
}

// parseGlobalFlags extracts global flags and returns the remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--verbose":
			parsedArgs.Verbose = true
		case "--no-llm":
			parsedArgs.NoLLM = true
		case "-m", "--model":
			if i+1 < len(args) {
				parsedArgs.Model = args[i+1]
				i++
			}
		default:
			remaining = append(remaining, arg)
		}
		i++
	}
	return remaining, parsedArgs
}
