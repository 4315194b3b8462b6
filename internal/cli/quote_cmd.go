// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// quote_cmd.go - Stock quote command handler for the finassist CLI.
//
// Handles the "finassist quote" command: look up a ticker directly,
// bypassing intent classification, and show a year of price history.
//
// Command: quote (aliases: stock, price)
// Short:   Look up a stock quote
//
// Examples:
//   finassist quote AAPL
//   finassist quote MSFT --no-chart

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/finassist-tui/internal/chart"
	"github.com/jeranaias/finassist-tui/internal/config"
	"github.com/jeranaias/finassist-tui/internal/market"
)

// HandleQuoteCommand handles the "quote" command.
func HandleQuoteCommand(args Args) error {
	parser := NewArgParser(args.Raw)

	ticker := strings.ToUpper(parser.Positional(0))
	if ticker == "" {
		fmt.Fprintf(os.Stderr, "%s no ticker provided\n", ErrorStyle.Render("[Error]"))
		fmt.Fprintln(os.Stderr, "Usage: finassist quote TICKER")
		os.Exit(1)
	}

	cfg := config.Global()
	client := market.NewClientWithConfig(&market.ClientConfig{
		BaseURL:           cfg.Market.BaseURL,
		Timeout:           cfg.MarketTimeout(),
		RequestsPerSecond: cfg.Market.RequestsPerSecond,
	})

	quote, err := client.Quote(context.Background(), ticker)
	if err != nil {
		if errors.Is(err, market.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "%s could not find data for ticker symbol %s\n",
				ErrorStyle.Render("[Error]"), ticker)
		} else {
			fmt.Fprintf(os.Stderr, "%s fetching data for %s: %v\n",
				ErrorStyle.Render("[Error]"), ticker, err)
		}
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", LabelStyle.Render("Name:"), ValueStyle.Render(quote.Name))
	fmt.Printf("%s %s\n", LabelStyle.Render("Ticker:"), ValueStyle.Render(quote.Ticker))
	fmt.Printf("%s %s\n", LabelStyle.Render("Price:"), SuccessStyle.Render(fmt.Sprintf("$%.2f", quote.Price)))

	if parser.BoolFlag("no-chart") || !cfg.UI.Charts || !IsStdoutTTY() {
		return nil
	}

	if len(quote.History) > 0 {
		title := fmt.Sprintf("%s (%s) - 1 Year Performance", quote.Name, quote.Ticker)
		fmt.Println()
		fmt.Print(chart.Sparkline(title, quote.History, chartWidth(cfg)))
	}
	return nil
}
