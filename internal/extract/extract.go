// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package extract pulls structured parameters out of free-text financial
// questions with a small, fixed set of patterns.
//
// Every extractor is an independent best-effort search over the lower-cased
// question. A miss yields ok=false, never a default - defaults (30-year
// terms, zero contributions) belong to the caller, where the intent is
// known.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// PATTERNS
// =============================================================================

// Patterns are compiled once at package load. The cascade order inside each
// extractor is part of the contract: the first matching pattern wins.
var (
	// Ticker cascade: price phrasing, then the direct command, then
	// trade phrasing ("buy/sell/invest in AAPL").
	tickerPricePattern  = regexp.MustCompile(`(?:price|value|quote|stock) (?:of|for) ([a-zA-Z]+)`)
	tickerDirectPattern = regexp.MustCompile(`get stock ([a-zA-Z]+)`)
	tickerTradePattern  = regexp.MustCompile(`(?:buy|sell|invest in) ([a-zA-Z]+)`)

	// Loan amount cascade: "loan of $250,000", then "$250,000 loan".
	loanAmountPattern     = regexp.MustCompile(`(?:loan|borrow|debt) (?:of|for|worth) \$?(\d{1,3}(?:,\d{3})*|\d+)(?:\s|\.|,|k|K)`)
	loanAmountPostPattern = regexp.MustCompile(`\$?(\d{1,3}(?:,\d{3})*|\d+)(?:k|K|) (?:loan|debt)`)

	// Bare amount, used by the broader investment matching.
	amountPattern = regexp.MustCompile(`\$?(\d{1,3}(?:,\d{3})*|\d+)(?:k|K|)`)

	ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s?%`)
	termPattern = regexp.MustCompile(`(\d+)\s?(?:year|yr)`)

	// Monthly contribution: "contribute $500" or "$500 per month".
	contributionPattern = regexp.MustCompile(`contribute \$?(\d{1,3}(?:,\d{3})*|\d+)|\$?(\d{1,3}(?:,\d{3})*|\d+) (?:per|a|each) month`)

	// First number in a stored fact value, e.g. "$5,000 per month".
	factNumberPattern = regexp.MustCompile(`(\d[\d,]*\.?\d*)`)
)

// =============================================================================
// TICKER
// =============================================================================

// Ticker extracts a candidate stock symbol from a question, upper-cased.
func Ticker(question string) (string, bool) {
	q := strings.ToLower(question)

	if m := tickerPricePattern.FindStringSubmatch(q); m != nil {
		return strings.ToUpper(m[1]), true
	}
	if m := tickerDirectPattern.FindStringSubmatch(q); m != nil {
		return strings.ToUpper(m[1]), true
	}
	if m := tickerTradePattern.FindStringSubmatch(q); m != nil {
		return strings.ToUpper(m[1]), true
	}
	return "", false
}

// =============================================================================
// AMOUNTS
// =============================================================================

// hasKiloSuffix reports whether the question mentions a "k" thousand
// shorthand anywhere. The original patterns match the literal anywhere in
// the text, not just adjacent to the number, and that looseness is kept:
// any word containing the letter ("bank", "stock", "401k") scales the
// extracted amount by 1000, and callers cannot opt out.
func hasKiloSuffix(question string) bool {
	return strings.Contains(strings.ToLower(question), "k")
}

// parseAmount converts a captured number ("250,000") to a float, applying
// the k-scaling rule from the surrounding question.
func parseAmount(capture, question string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.ReplaceAll(capture, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if hasKiloSuffix(question) {
		n *= 1000
	}
	return n, true
}

// LoanAmount extracts a loan principal using the loan-specific cascade.
func LoanAmount(question string) (float64, bool) {
	m := loanAmountPattern.FindStringSubmatch(question)
	if m == nil {
		m = loanAmountPostPattern.FindStringSubmatch(question)
	}
	if m == nil {
		return 0, false
	}
	return parseAmount(m[1], question)
}

// Amount extracts the first bare dollar amount anywhere in the question.
// This is the deliberately broad form used by the investment branch.
func Amount(question string) (float64, bool) {
	m := amountPattern.FindStringSubmatch(question)
	if m == nil {
		return 0, false
	}
	return parseAmount(m[1], question)
}

// =============================================================================
// RATE / TERM / CONTRIBUTION
// =============================================================================

// Rate extracts the first percentage in the question (4.5 from "4.5%").
func Rate(question string) (float64, bool) {
	m := ratePattern.FindStringSubmatch(question)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// TermYears extracts the first "N year"/"N yr" term in the question.
func TermYears(question string) (int, bool) {
	m := termPattern.FindStringSubmatch(strings.ToLower(question))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// MonthlyContribution extracts a recurring contribution amount, matching
// either "contribute $500" or "$500 per/a/each month". First match wins.
func MonthlyContribution(question string) (float64, bool) {
	m := contributionPattern.FindStringSubmatch(strings.ToLower(question))
	if m == nil {
		return 0, false
	}
	capture := m[1]
	if capture == "" {
		capture = m[2]
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(capture, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// =============================================================================
// STORED-FACT VALUES
// =============================================================================

// FactNumber parses the first numeric value out of a stored fact's free
// text, tolerating a leading $ and thousands separators ("$5,000 per month"
// yields 5000).
func FactNumber(value string) (float64, bool) {
	cleaned := strings.ReplaceAll(value, "$", "")
	m := factNumberPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
