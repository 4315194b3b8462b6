// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart renders chart series as terminal text: horizontal stacked
// bars for investment growth schedules and a block-character sparkline for
// price history.
package chart

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/jeranaias/finassist-tui/internal/finance"
	"github.com/jeranaias/finassist-tui/internal/market"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	principalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	contributionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	growthStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow-orange
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	titleStyle        = lipgloss.NewStyle().Bold(true)
	sparkStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

const barRune = "█"

// sparkRunes are the eight block heights, lowest first.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

// TerminalWidth returns the current terminal width, or fallback when stdout
// is not a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// =============================================================================
// GROWTH CHART
// =============================================================================

// Growth renders a growth schedule as one stacked bar per year, scaled so
// the largest total fills the available width. Years are thinned to at most
// 15 rows so a 30-year schedule stays readable.
func Growth(rows []finance.YearRow, width int) string {
	if len(rows) == 0 {
		return ""
	}
	if width < 40 {
		width = 40
	}

	maxTotal := 0.0
	for _, row := range rows {
		if row.Total > maxTotal {
			maxTotal = row.Total
		}
	}
	if maxTotal <= 0 {
		return ""
	}

	// Label ("Yr 30 ") plus the amount column bound the bar area.
	labelWidth := 7
	amountWidth := 14
	barArea := width - labelWidth - amountWidth
	if barArea < 10 {
		barArea = 10
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Investment Growth Over Time"))
	b.WriteString("\n\n")

	for _, row := range thinRows(rows, 15) {
		scale := float64(barArea) / maxTotal
		principalCells := int(math.Round(row.Principal * scale))
		contributionCells := int(math.Round(row.Contributions * scale))
		growthCells := int(math.Round(row.Growth * scale))

		label := fmt.Sprintf("Yr %-3d ", row.Year)
		b.WriteString(labelStyle.Render(label))
		b.WriteString(principalStyle.Render(strings.Repeat(barRune, principalCells)))
		b.WriteString(contributionStyle.Render(strings.Repeat(barRune, contributionCells)))
		b.WriteString(growthStyle.Render(strings.Repeat(barRune, growthCells)))
		b.WriteString(fmt.Sprintf(" $%.0f", row.Total))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(principalStyle.Render(barRune))
	b.WriteString(" Principal  ")
	b.WriteString(contributionStyle.Render(barRune))
	b.WriteString(" Contributions  ")
	b.WriteString(growthStyle.Render(barRune))
	b.WriteString(" Growth\n")
	return b.String()
}

// thinRows keeps at most max rows, always including the first and last.
func thinRows(rows []finance.YearRow, max int) []finance.YearRow {
	if len(rows) <= max {
		return rows
	}

	step := float64(len(rows)-1) / float64(max-1)
	thinned := make([]finance.YearRow, 0, max)
	for i := 0; i < max; i++ {
		thinned = append(thinned, rows[int(math.Round(float64(i)*step))])
	}
	return thinned
}

// =============================================================================
// PRICE SPARKLINE
// =============================================================================

// Sparkline renders a price history as a single-line block chart with the
// range labels underneath.
func Sparkline(title string, history []market.Bar, width int) string {
	if len(history) == 0 {
		return ""
	}
	if width < 20 {
		width = 20
	}

	// Reserve room so the labels below never wrap.
	cells := width - 2
	if cells > len(history) {
		cells = len(history)
	}

	low, high := history[0].Close, history[0].Close
	for _, bar := range history {
		if bar.Close < low {
			low = bar.Close
		}
		if bar.Close > high {
			high = bar.Close
		}
	}

	step := 0.0
	if cells > 1 {
		step = float64(len(history)-1) / float64(cells-1)
	}

	var line strings.Builder
	for i := 0; i < cells; i++ {
		price := history[int(math.Round(float64(i)*step))].Close

		level := 0
		if high > low {
			level = int((price - low) / (high - low) * float64(len(sparkRunes)-1))
		}
		line.WriteRune(sparkRunes[level])
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(sparkStyle.Render(line.String()))
	b.WriteString("\n")

	first := history[0].Date.Format("Jan 2006")
	last := history[len(history)-1].Date.Format("Jan 2006")
	rangeLabel := fmt.Sprintf("low $%.2f · high $%.2f", low, high)
	gap := cells - runewidth.StringWidth(first) - runewidth.StringWidth(last) - runewidth.StringWidth(rangeLabel)
	if gap < 2 {
		b.WriteString(labelStyle.Render(first + "  " + rangeLabel + "  " + last))
	} else {
		b.WriteString(labelStyle.Render(first + strings.Repeat(" ", gap/2) + rangeLabel + strings.Repeat(" ", gap-gap/2) + last))
	}
	b.WriteString("\n")
	return b.String()
}
