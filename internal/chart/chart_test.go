// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/finassist-tui/internal/finance"
	"github.com/jeranaias/finassist-tui/internal/market"
)

func TestGrowthChart(t *testing.T) {
	rows := finance.GrowthSchedule(10000, 7, 20, 0)

	out := Growth(rows, 80)
	if !strings.Contains(out, "Investment Growth Over Time") {
		t.Error("expected chart title")
	}
	if !strings.Contains(out, "Yr 0") {
		t.Error("expected year 0 row")
	}
	if !strings.Contains(out, "Yr 20") {
		t.Error("expected final year row")
	}
	if !strings.Contains(out, "Principal") || !strings.Contains(out, "Growth") {
		t.Error("expected legend")
	}
}

func TestGrowthChartEmpty(t *testing.T) {
	if out := Growth(nil, 80); out != "" {
		t.Errorf("expected empty output for no rows, got %q", out)
	}
}

func TestGrowthChartThinsLongSchedules(t *testing.T) {
	rows := finance.GrowthSchedule(5000, 8, 30, 500)

	out := Growth(rows, 100)
	barLines := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Yr ") {
			barLines++
		}
	}
	if barLines > 15 {
		t.Errorf("expected at most 15 bar rows, got %d", barLines)
	}
}

func TestSparkline(t *testing.T) {
	start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	history := make([]market.Bar, 0, 250)
	for i := 0; i < 250; i++ {
		history = append(history, market.Bar{
			Date:  start.AddDate(0, 0, i),
			Close: 100 + float64(i%40),
		})
	}

	out := Sparkline("Apple Inc. (AAPL) - 1 Year", history, 60)
	if !strings.Contains(out, "Apple Inc. (AAPL) - 1 Year") {
		t.Error("expected title")
	}
	if !strings.Contains(out, "low $100.00") {
		t.Error("expected low label")
	}
	if !strings.Contains(out, "high $139.00") {
		t.Error("expected high label")
	}
}

func TestSparklineSingleBar(t *testing.T) {
	history := []market.Bar{{Date: time.Now(), Close: 42}}

	// Must not panic or divide by zero.
	out := Sparkline("X", history, 60)
	if out == "" {
		t.Error("expected output for a single bar")
	}
}

func TestSparklineEmpty(t *testing.T) {
	if out := Sparkline("X", nil, 60); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
