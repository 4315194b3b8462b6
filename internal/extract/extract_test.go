// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package extract

import "testing"

// =============================================================================
// TICKER EXTRACTION
// =============================================================================

func TestTicker(t *testing.T) {
	cases := []struct {
		name     string
		question string
		want     string
		ok       bool
	}{
		{"price of", "What's the price of AAPL?", "AAPL", true},
		{"value for", "current value for tsla please", "TSLA", true},
		{"quote of", "give me a quote of msft", "MSFT", true},
		{"get stock", "get stock NVDA", "NVDA", true},
		{"invest in", "should I invest in amzn?", "AMZN", true},
		{"buy", "should I buy GOOG now", "GOOG", true},
		{"no ticker", "how do I make a budget?", "", false},
		{"price without of/for", "what's the price today", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Ticker(tc.question)
			if ok != tc.ok || got != tc.want {
				t.Errorf("Ticker(%q) = (%q, %v), want (%q, %v)", tc.question, got, ok, tc.want, tc.ok)
			}
		})
	}
}

// TestTickerCascadeOrder verifies the price phrasing wins over the trade
// phrasing when both are present.
func TestTickerCascadeOrder(t *testing.T) {
	got, ok := Ticker("should I buy msft or check the price of aapl first?")
	if !ok || got != "AAPL" {
		t.Errorf("expected price pattern to win, got (%q, %v)", got, ok)
	}
}

// =============================================================================
// AMOUNT EXTRACTION
// =============================================================================

func TestLoanAmount(t *testing.T) {
	cases := []struct {
		name     string
		question string
		want     float64
		ok       bool
	}{
		{"loan of with separators", "How much will I pay for a loan of $250,000 at 4.5%?", 250000, true},
		{"loan worth", "a loan worth 180,000 over 15 years", 180000, true},
		{"amount before loan", "can I afford a $300,000 loan?", 300000, true},
		{"k suffix", "a 250k loan at 5%", 250000, true},
		{"no amount", "how do loans work?", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := LoanAmount(tc.question)
			if ok != tc.ok || got != tc.want {
				t.Errorf("LoanAmount(%q) = (%v, %v), want (%v, %v)", tc.question, got, ok, tc.want, tc.ok)
			}
		})
	}
}

// The k-scaling rule keys off a "k" appearing anywhere in the question, not
// just next to the number. That looseness is inherited behavior; pin it.
func TestLoanAmountKiloAnywhere(t *testing.T) {
	got, ok := LoanAmount("I took a bank loan of $5,000 at 3%")
	if !ok || got != 5000000 {
		t.Errorf("LoanAmount with stray k = (%v, %v), want (5000000, true)", got, ok)
	}
}

func TestAmount(t *testing.T) {
	got, ok := Amount("If I invest $10,000 at 7% return for 20 years")
	if !ok || got != 10000 {
		t.Errorf("Amount = (%v, %v), want (10000, true)", got, ok)
	}

	if _, ok := Amount("no numbers here"); ok {
		t.Error("Amount matched a question with no numbers")
	}
}

// =============================================================================
// RATE / TERM / CONTRIBUTION
// =============================================================================

func TestRate(t *testing.T) {
	cases := []struct {
		question string
		want     float64
		ok       bool
	}{
		{"a $250,000 loan at 4.5% for 30 years", 4.5, true},
		{"7% return", 7, true},
		{"rate of 3.25 %", 3.25, true},
		{"no rate mentioned", 0, false},
	}

	for _, tc := range cases {
		got, ok := Rate(tc.question)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Rate(%q) = (%v, %v), want (%v, %v)", tc.question, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTermYears(t *testing.T) {
	cases := []struct {
		question string
		want     int
		ok       bool
	}{
		{"for 30 years", 30, true},
		{"a 15 yr mortgage", 15, true},
		{"over 20years", 20, true},
		{"next month", 0, false},
	}

	for _, tc := range cases {
		got, ok := TermYears(tc.question)
		if ok != tc.ok || got != tc.want {
			t.Errorf("TermYears(%q) = (%v, %v), want (%v, %v)", tc.question, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMonthlyContribution(t *testing.T) {
	cases := []struct {
		question string
		want     float64
		ok       bool
	}{
		{"if I contribute $500 to my investment", 500, true},
		{"adding $1,000 per month at 6%", 1000, true},
		{"put in 250 each month", 250, true},
		{"100 a month savings", 100, true},
		{"just a lump sum of $10,000", 0, false},
	}

	for _, tc := range cases {
		got, ok := MonthlyContribution(tc.question)
		if ok != tc.ok || got != tc.want {
			t.Errorf("MonthlyContribution(%q) = (%v, %v), want (%v, %v)", tc.question, got, ok, tc.want, tc.ok)
		}
	}
}

// =============================================================================
// FACT VALUES
// =============================================================================

func TestFactNumber(t *testing.T) {
	cases := []struct {
		value string
		want  float64
		ok    bool
	}{
		{"$5000 per month", 5000, true},
		{"$5,000", 5000, true},
		{"60000 a year", 60000, true},
		{"about 1234.56 dollars", 1234.56, true},
		{"not a number", 0, false},
	}

	for _, tc := range cases {
		got, ok := FactNumber(tc.value)
		if ok != tc.ok || got != tc.want {
			t.Errorf("FactNumber(%q) = (%v, %v), want (%v, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}
