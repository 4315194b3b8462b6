// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - Answer rendering for the finassist CLI.
//
// Answers render through glamour when stdout is a TTY so lists and emphasis
// come out formatted; piped output stays plain text. Chart series attached
// to an answer render underneath it.

package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/finassist-tui/internal/assistant"
	"github.com/jeranaias/finassist-tui/internal/chart"
	"github.com/jeranaias/finassist-tui/internal/config"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the global glamour renderer for answer output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to plain text if renderer initialization fails.
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display. Returns the
// original content if rendering fails or the renderer is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// =============================================================================
// ANSWER DISPLAY
// =============================================================================

// chartWidth resolves the chart width: config override, else terminal width.
func chartWidth(cfg *config.Config) int {
	if cfg.UI.ChartWidth > 0 {
		return cfg.UI.ChartWidth
	}
	return GetTerminalWidth()
}

// displayAnswer prints an answer's text and any attached chart series.
func displayAnswer(answer assistant.Answer, cfg *config.Config) {
	if cfg.UI.Markdown && IsStdoutTTY() {
		fmt.Print(renderMarkdown(answer.Text))
	} else {
		fmt.Println(answer.Text)
	}

	if !cfg.UI.Charts || !IsStdoutTTY() {
		return
	}

	if len(answer.Growth) > 0 {
		fmt.Println()
		fmt.Print(chart.Growth(answer.Growth, chartWidth(cfg)))
	}
	if answer.Quote != nil && len(answer.Quote.History) > 0 {
		title := fmt.Sprintf("%s (%s) - 1 Year Performance", answer.Quote.Name, answer.Quote.Ticker)
		fmt.Println()
		fmt.Print(chart.Sparkline(title, answer.Quote.History, chartWidth(cfg)))
	}
}
